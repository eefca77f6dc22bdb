package renderer

import "github.com/fatih/color"

// Palette holds one style per value variant plus the object-key style.
// Structural characters (braces, brackets, colons, commas) are never styled.
type Palette struct {
	Key    *color.Color
	String *color.Color
	Number *color.Color
	Bool   *color.Color
	Null   *color.Color
}

// NewPalette returns the default palette. The enabled switch is resolved once
// by the caller (from the --no-color flag and the NO_COLOR environment
// variable) and forced onto every style, overriding fatih/color's process
// global and TTY detection. Rendering stays a pure function of tree and
// configuration.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		Key:    color.New(color.FgCyan, color.Bold),
		String: color.New(color.FgGreen),
		Number: color.New(color.FgYellow),
		Bool:   color.New(color.FgMagenta),
		Null:   color.New(color.FgRed),
	}
	for _, c := range p.styles() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Palette) styles() []*color.Color {
	return []*color.Color{p.Key, p.String, p.Number, p.Bool, p.Null}
}
