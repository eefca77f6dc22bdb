package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/nclandrei/cviz/internal/config"
	"github.com/nclandrei/cviz/internal/errors"
	"github.com/nclandrei/cviz/internal/models"
	"github.com/nclandrei/cviz/internal/parser"
	"github.com/nclandrei/cviz/internal/renderer"
)

// CLI defines the command-line interface
var CLI struct {
	Path     string `arg:"" optional:"" help:"Path to the config file to display. Reads stdin when omitted." type:"path"`
	Language string `help:"Input language when reading from stdin (json, toml, yaml, yml)." short:"l"`
	Indent   *int   `help:"Number of spaces per indentation level, between 0 and 10 (default 2)." short:"i"`
	NoColor  bool   `help:"Disable colorized output."`
	Version  bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	kongParser := kong.Must(&CLI,
		kong.Name("cviz"),
		kong.Description("Pretty-print JSON, TOML and YAML config files as colorized JSON"),
		kong.UsageOnError(),
	)

	_, err := kongParser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("cviz version %s\n", Version)
		return
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// run executes the main program logic: resolve configuration, acquire input,
// parse it into the uniform value tree and render that tree to w.
func run(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Indent and color are resolved and validated before any input is read:
	// a bad configuration must never produce partial output.
	indent, err := resolveIndent(cfg)
	if err != nil {
		return err
	}
	colorEnabled := resolveColorEnabled(cfg)

	contents, format, err := readInput()
	if err != nil {
		return err
	}

	data, err := parser.Parse(contents, format)
	if err != nil {
		return err
	}

	// The adapters are expected to hand back an object at the root; anything
	// else is an adapter bug, not a user mistake.
	if data.Kind != models.KindObject {
		return errors.NewInternalError("parsed data is not a valid object", errors.ErrNonObjectRoot)
	}

	r := renderer.New(indent, renderer.NewPalette(colorEnabled))
	return r.Render(w, data)
}

// loadConfig returns the on-disk defaults, or the built-in ones when no
// config file exists.
func loadConfig() (*config.Config, error) {
	path := config.FindConfigFile()
	if path == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("invalid config file %q", path), err)
	}
	return cfg, nil
}

// resolveIndent applies flag-over-config precedence and enforces the 0-10
// range.
func resolveIndent(cfg *config.Config) (int, error) {
	indent := cfg.Indent
	if CLI.Indent != nil {
		indent = *CLI.Indent
	}
	if indent < 0 || indent > 10 {
		return 0, errors.NewConfigError(
			fmt.Sprintf("indentation level %d is out of range, must be between 0 and 10", indent),
			errors.ErrIndentOutOfRange,
		)
	}
	return indent, nil
}

// resolveColorEnabled folds the three color signals into one boolean. The
// NO_COLOR environment variable, when set at all (even empty), forces color
// off and overrides the flag and the config file.
func resolveColorEnabled(cfg *config.Config) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return !CLI.NoColor && !cfg.NoColor
}

// readInput acquires the document text and its format tag, from the file
// named on the command line or from stdin.
func readInput() ([]byte, parser.Format, error) {
	if CLI.Path == "" {
		return readStdin()
	}
	return readFile(CLI.Path)
}

func readStdin() ([]byte, parser.Format, error) {
	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", errors.NewInputError("failed to read from stdin", err)
	}

	if CLI.Language == "" {
		return nil, "", errors.NewConfigError("language is not specified for stdin", errors.ErrMissingLanguage)
	}
	format, ok := parser.FormatForTag(CLI.Language)
	if !ok {
		return nil, "", errors.NewConfigError(
			fmt.Sprintf("unsupported language %q", CLI.Language),
			errors.ErrUnsupportedFormat,
		)
	}
	return contents, format, nil
}

func readFile(path string) ([]byte, parser.Format, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.NewInputError(fmt.Sprintf("file %q not found", path), errors.ErrFileNotFound)
		}
		return nil, "", errors.NewInputError(fmt.Sprintf("failed to read file %q", path), err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	format, ok := parser.FormatForTag(ext)
	if !ok {
		return nil, "", errors.NewConfigError(
			fmt.Sprintf("unsupported file format %q", ext),
			errors.ErrUnsupportedFormat,
		)
	}
	return contents, format, nil
}
