package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	stderrors "errors"

	"github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/models"
)

// ParseJSON converts a JSON document into a models.Value.
//
// It walks the token stream directly instead of unmarshalling into maps:
// json.Unmarshal hands back map[string]any, which destroys key order, while
// Decoder.Token yields object keys in document order. UseNumber keeps numbers
// in their textual form so the integer/float distinction survives.
func ParseJSON(data []byte) (models.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return models.Value{}, wrapJSONError(err)
	}

	v, err := jsonValue(dec, tok)
	if err != nil {
		return models.Value{}, wrapJSONError(err)
	}

	// Anything but EOF after the first value means trailing garbage.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return models.Value{}, errors.NewParseError("multiple JSON values found at the root", nil)
		}
		return models.Value{}, wrapJSONError(err)
	}

	return v, nil
}

func jsonValue(dec *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return models.Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case nil:
		return models.Null(), nil
	case bool:
		return models.FromBool(t), nil
	case json.Number:
		return models.FromNumber(t), nil
	case string:
		return models.FromString(t), nil
	}
	return models.Value{}, fmt.Errorf("unexpected token %v", tok)
}

func jsonObject(dec *json.Decoder) (models.Value, error) {
	obj := models.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return models.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return models.Value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return models.Value{}, err
		}
		val, err := jsonValue(dec, valTok)
		if err != nil {
			return models.Value{}, err
		}
		obj.Set(key, val)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return models.Value{}, err
	}
	return models.FromObject(obj), nil
}

func jsonArray(dec *json.Decoder) (models.Value, error) {
	vals := []models.Value{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return models.Value{}, err
		}
		val, err := jsonValue(dec, tok)
		if err != nil {
			return models.Value{}, err
		}
		vals = append(vals, val)
	}
	// Closing bracket.
	if _, err := dec.Token(); err != nil {
		return models.Value{}, err
	}
	return models.FromArray(vals), nil
}

// wrapJSONError classifies decoder failures, keeping the offset detail from
// syntax errors in the message.
func wrapJSONError(err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParseError("JSON document is empty or truncated", err)
	}
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewParseError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxErr.Offset),
			err,
		)
	}
	return errors.NewParseError("failed to decode JSON", err)
}
