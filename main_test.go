package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclandrei/cviz/internal/config"
	apperrors "github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/parser"
)

// resetCLI saves and restores the global CLI state around a test, and moves
// the working directory to an empty temp dir so no stray .cviz.yml on the
// machine leaks into the run.
func resetCLI(t *testing.T) {
	t.Helper()
	originalCLI := CLI
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		CLI = originalCLI
		_ = os.Chdir(old)
	})
	CLI.Path = ""
	CLI.Language = ""
	CLI.Indent = nil
	CLI.NoColor = false
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRun_JSONFile(t *testing.T) {
	resetCLI(t)

	CLI.Path = writeTempFile(t, "sample.json", `{"a":1,"b":[true,null]}`)
	CLI.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, run(&buf))

	expected := `{
  "a": 1,
  "b": [
    true,
    null
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestRun_TOMLFile(t *testing.T) {
	resetCLI(t)

	CLI.Path = writeTempFile(t, "sample.toml", "title = \"x\"\ncount = 2\n")
	CLI.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, run(&buf))

	expected := `{
  "title": "x",
  "count": 2
}
`
	assert.Equal(t, expected, buf.String())
}

func TestRun_YAMLFileWithIndentFlag(t *testing.T) {
	resetCLI(t)

	CLI.Path = writeTempFile(t, "sample.yaml", "outer:\n  inner: ok\n")
	CLI.NoColor = true
	indent := 4
	CLI.Indent = &indent

	var buf bytes.Buffer
	require.NoError(t, run(&buf))

	expected := `{
    "outer": {
        "inner": "ok"
    }
}
`
	assert.Equal(t, expected, buf.String())
}

func TestRun_IndentOutOfRange(t *testing.T) {
	resetCLI(t)

	// The path deliberately does not exist: the indent must be rejected
	// before any input is read.
	CLI.Path = filepath.Join(t.TempDir(), "never-read.json")
	indent := 11
	CLI.Indent = &indent

	var buf bytes.Buffer
	err := run(&buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrIndentOutOfRange))
	assert.Empty(t, buf.String(), "no partial output on configuration errors")
}

func TestRun_FileNotFound(t *testing.T) {
	resetCLI(t)

	CLI.Path = filepath.Join(t.TempDir(), "missing.json")

	err := run(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrFileNotFound))
}

func TestRun_UnsupportedExtension(t *testing.T) {
	resetCLI(t)

	CLI.Path = writeTempFile(t, "settings.ini", "[section]\nkey=value\n")

	err := run(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
}

func TestRun_NonObjectRootIsInternalError(t *testing.T) {
	resetCLI(t)

	CLI.Path = writeTempFile(t, "bare.json", `[1, 2, 3]`)

	var buf bytes.Buffer
	err := run(&buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNonObjectRoot))
	assert.Empty(t, buf.String(), "no partial output on contract violations")
}

func TestRun_ParseErrorSurfaces(t *testing.T) {
	resetCLI(t)

	CLI.Path = writeTempFile(t, "broken.json", `{"a": `)

	err := run(&bytes.Buffer{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
}

func TestResolveIndent(t *testing.T) {
	resetCLI(t)

	cfg := config.NewConfig()

	// Default comes from config.
	indent, err := resolveIndent(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, indent)

	// Flag wins over config.
	flag := 0
	CLI.Indent = &flag
	indent, err = resolveIndent(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, indent)

	// Both ends of the valid range.
	flag = 10
	indent, err = resolveIndent(cfg)
	require.NoError(t, err)
	assert.Equal(t, 10, indent)

	flag = 11
	_, err = resolveIndent(cfg)
	assert.True(t, errors.Is(err, apperrors.ErrIndentOutOfRange))

	flag = -1
	_, err = resolveIndent(cfg)
	assert.True(t, errors.Is(err, apperrors.ErrIndentOutOfRange))

	// A bad config value is caught too when no flag overrides it.
	CLI.Indent = nil
	cfg.Indent = 11
	_, err = resolveIndent(cfg)
	assert.True(t, errors.Is(err, apperrors.ErrIndentOutOfRange))
}

func TestResolveColorEnabled(t *testing.T) {
	resetCLI(t)

	cfg := config.NewConfig()

	t.Setenv("NO_COLOR", "")
	assert.False(t, resolveColorEnabled(cfg), "NO_COLOR set to empty still disables color")

	t.Setenv("NO_COLOR", "1")
	CLI.NoColor = false
	assert.False(t, resolveColorEnabled(cfg))

	require.NoError(t, os.Unsetenv("NO_COLOR"))
	assert.True(t, resolveColorEnabled(cfg))

	CLI.NoColor = true
	assert.False(t, resolveColorEnabled(cfg))

	CLI.NoColor = false
	cfg.NoColor = true
	assert.False(t, resolveColorEnabled(cfg), "config file default disables color")
}

func TestRun_ConfigFileDefaults(t *testing.T) {
	resetCLI(t)

	// resetCLI moved us into an empty temp dir; drop a config file there.
	require.NoError(t, os.WriteFile(".cviz.yml", []byte("indent: 4\nno_color: true\n"), 0644))

	CLI.Path = writeTempFile(t, "sample.json", `{"k": "v"}`)

	var buf bytes.Buffer
	require.NoError(t, run(&buf))

	expected := `{
    "k": "v"
}
`
	assert.Equal(t, expected, buf.String())
}

func TestRun_MalformedConfigFile(t *testing.T) {
	resetCLI(t)

	require.NoError(t, os.WriteFile(".cviz.yml", []byte("indent: [oops\n"), 0644))
	CLI.Path = writeTempFile(t, "sample.json", `{"k": "v"}`)

	err := run(&bytes.Buffer{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeConfig, appErr.Type)
}

func TestReadFile_DerivesFormatFromExtension(t *testing.T) {
	resetCLI(t)

	tests := []struct {
		name     string
		expected parser.Format
	}{
		{"a.json", parser.FormatJSON},
		{"a.toml", parser.FormatTOML},
		{"a.yaml", parser.FormatYAML},
		{"a.yml", parser.FormatYAML},
		{"a.JSON", parser.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.name, "ignored")
			_, format, err := readFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestReadInput_StdinRequiresLanguage(t *testing.T) {
	resetCLI(t)

	// No path and no language: stdin input must name a language. Stdin is
	// redirected to an empty pipe so the read returns immediately.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	_, _, err = readInput()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingLanguage))
}

func TestReadInput_StdinWithLanguage(t *testing.T) {
	resetCLI(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(`{"from": "stdin"}`)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	CLI.Language = "json"
	contents, format, err := readInput()
	require.NoError(t, err)
	assert.Equal(t, parser.FormatJSON, format)
	assert.Equal(t, `{"from": "stdin"}`, string(contents))
}

func TestReadInput_StdinUnsupportedLanguage(t *testing.T) {
	resetCLI(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	CLI.Language = "ini"
	_, _, err = readInput()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
}
