package parser

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/models"
)

// ParseYAML converts a YAML document into a models.Value.
//
// Decoding goes through the yaml.Node API rather than into map[string]any:
// a MappingNode lists its key/value pairs in document order, which is the
// order the object must keep. Alias nodes are resolved through their anchor.
func ParseYAML(data []byte) (models.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return models.Value{}, errors.NewParseError("invalid YAML document", err)
	}
	if doc.Kind == 0 {
		// Empty input parses to a zero node.
		return models.Null(), nil
	}
	v, err := fromYAMLNode(&doc)
	if err != nil {
		return models.Value{}, errors.NewParseError("invalid YAML document", err)
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (models.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return models.Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		obj := models.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := yamlKey(n.Content[i])
			if err != nil {
				return models.Value{}, err
			}
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return models.Value{}, err
			}
			obj.Set(key, val)
		}
		return models.FromObject(obj), nil
	case yaml.SequenceNode:
		vals := make([]models.Value, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := fromYAMLNode(c)
			if err != nil {
				return models.Value{}, err
			}
			vals = append(vals, val)
		}
		return models.FromArray(vals), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return models.Value{}, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}

func yamlKey(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode {
		return yamlKey(n.Alias)
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("unsupported non-scalar mapping key at line %d", n.Line)
	}
	return n.Value, nil
}

func fromYAMLScalar(n *yaml.Node) (models.Value, error) {
	switch n.Tag {
	case "!!null":
		return models.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return models.Value{}, err
		}
		return models.FromBool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range; the literal text is still a number.
			return models.FromNumber(json.Number(n.Value)), nil
		}
		return models.FromInt(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return models.Value{}, err
		}
		return models.FromFloat(f), nil
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their text.
		return models.FromString(n.Value), nil
	}
}
