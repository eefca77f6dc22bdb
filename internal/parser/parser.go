// Package parser converts raw JSON, TOML and YAML documents into the uniform
// value representation in internal/models. Each adapter is a thin layer over
// an existing parsing library; the one job they all share is preserving the
// source document's key declaration order.
package parser

import (
	"fmt"
	"strings"

	"github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/models"
)

// Format identifies an input document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForTag maps a language tag or file extension (case-insensitive) to a
// Format. The yml spelling is accepted as an alias for yaml.
func FormatForTag(tag string) (Format, bool) {
	switch strings.ToLower(tag) {
	case "json":
		return FormatJSON, true
	case "toml":
		return FormatTOML, true
	case "yaml", "yml":
		return FormatYAML, true
	}
	return "", false
}

// Parse converts document bytes in the given format into a models.Value.
// Adapters return whatever root shape the document has; enforcing the
// object-root contract is the caller's job.
func Parse(data []byte, f Format) (models.Value, error) {
	switch f {
	case FormatJSON:
		return ParseJSON(data)
	case FormatTOML:
		return ParseTOML(data)
	case FormatYAML:
		return ParseYAML(data)
	}
	return models.Value{}, errors.NewConfigError(
		fmt.Sprintf("unsupported format %q", string(f)),
		errors.ErrUnsupportedFormat,
	)
}
