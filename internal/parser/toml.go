package parser

import (
	"fmt"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/models"
)

// ParseTOML converts a TOML document into a models.Value. The root of a TOML
// document is always a table, so the result is always an object.
//
// BurntSushi decodes tables into plain Go maps, which lose declaration order;
// the decoder's MetaData records every key in document order, so the tree is
// rebuilt by looking keys up through it.
func ParseTOML(data []byte) (models.Value, error) {
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return models.Value{}, errors.NewParseError("invalid TOML document", err)
	}
	return fromTOML(raw, meta.Keys(), nil), nil
}

// fromTOML rebuilds a value from the decoded data plus the slice of recorded
// keys that belongs to it. Each [[table]] header shows up in the key stream as
// a repeat of the array's own key, so arrays of tables hand every element only
// its segment of the stream; sibling elements may declare the same keys in
// different orders.
func fromTOML(v any, keys []toml.Key, prefix []string) models.Value {
	switch val := v.(type) {
	case map[string]any:
		obj := models.NewObject()
		for _, k := range tomlKeysInOrder(keys, prefix, val) {
			obj.Set(k, fromTOML(val[k], keys, append(prefix, k)))
		}
		return models.FromObject(obj)
	case []map[string]any:
		// Array of tables.
		segs := tomlTableArraySegments(keys, prefix, len(val))
		vals := make([]models.Value, len(val))
		for i, item := range val {
			vals[i] = fromTOML(item, segs[i], prefix)
		}
		return models.FromArray(vals)
	case []any:
		vals := make([]models.Value, len(val))
		for i, item := range val {
			vals[i] = fromTOML(item, keys, prefix)
		}
		return models.FromArray(vals)
	case nil:
		return models.Null()
	case bool:
		return models.FromBool(val)
	case int64:
		return models.FromInt(val)
	case float64:
		return models.FromFloat(val)
	case string:
		return models.FromString(val)
	case time.Time:
		return models.FromString(val.Format(time.RFC3339))
	default:
		// TOML local date/time wrapper types and anything else with a
		// sensible textual form.
		return models.FromString(fmt.Sprintf("%v", val))
	}
}

// tomlKeysInOrder returns the keys of m in document order, recovered from the
// recorded key stream. Keys the stream does not know about (there should be
// none) are appended in map order as a fallback.
func tomlKeysInOrder(keys []toml.Key, prefix []string, m map[string]any) []string {
	ordered := make([]string, 0, len(m))
	for _, key := range keys {
		if len(key) != len(prefix)+1 || !tomlKeyHasPrefix(key, prefix) {
			continue
		}
		k := key[len(prefix)]
		if _, exists := m[k]; exists && !slices.Contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}
	for k := range m {
		if !slices.Contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}
	return ordered
}

// tomlTableArraySegments splits the key stream of an array of tables into one
// slice per element. Each [[table]] header is recorded as an entry exactly
// equal to prefix, and everything after it belongs to that element until the
// following header. An inline table array records the assignment key just
// once, so when the header count does not match the element count every
// element keeps the full stream and the map membership check in
// tomlKeysInOrder narrows it down.
func tomlTableArraySegments(keys []toml.Key, prefix []string, n int) [][]toml.Key {
	headers := 0
	for _, key := range keys {
		if len(key) == len(prefix) && tomlKeyHasPrefix(key, prefix) {
			headers++
		}
	}
	segs := make([][]toml.Key, n)
	if headers != n {
		for i := range segs {
			segs[i] = keys
		}
		return segs
	}
	elem := -1
	for _, key := range keys {
		if len(key) == len(prefix) && tomlKeyHasPrefix(key, prefix) {
			elem++
			continue
		}
		if elem >= 0 {
			segs[elem] = append(segs[elem], key)
		}
	}
	return segs
}

func tomlKeyHasPrefix(key toml.Key, prefix []string) bool {
	if len(key) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if key[i] != p {
			return false
		}
	}
	return true
}
