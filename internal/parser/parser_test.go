package parser

import (
	"errors"
	"testing"

	apperrors "github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/models"
)

func TestFormatForTag(t *testing.T) {
	tests := []struct {
		tag      string
		expected Format
		ok       bool
	}{
		{"json", FormatJSON, true},
		{"toml", FormatTOML, true},
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"JSON", FormatJSON, true},
		{"YML", FormatYAML, true},
		{"ini", "", false},
		{"xml", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			f, ok := FormatForTag(tt.tag)
			if ok != tt.ok {
				t.Fatalf("FormatForTag(%q) ok = %v, want %v", tt.tag, ok, tt.ok)
			}
			if f != tt.expected {
				t.Errorf("FormatForTag(%q) = %q, want %q", tt.tag, f, tt.expected)
			}
		})
	}
}

func TestParse_DispatchesAllFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"key": "value"}`},
		{"toml", FormatTOML, `key = "value"`},
		{"yaml", FormatYAML, "key: value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v, wantErr nil", err)
			}
			if v.Kind != models.KindObject {
				t.Fatalf("Parse() root kind = %v, want object", v.Kind)
			}
			got, ok := v.Object.Get("key")
			if !ok {
				t.Fatal("Parse() root object is missing key \"key\"")
			}
			if got.Kind != models.KindString || got.Str != "value" {
				t.Errorf("Parse() value = %+v, want string \"value\"", got)
			}
		})
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("whatever"), Format("ini"))
	if err == nil {
		t.Fatal("Parse() error = nil, want unsupported format error")
	}
	if !errors.Is(err, apperrors.ErrUnsupportedFormat) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedFormat", err)
	}
}
