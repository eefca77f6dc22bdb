// Package renderer turns a models.Value tree into colorized, indented,
// JSON-syntax text. It is a depth-first walk that threads the current depth
// and an is-last flag through every container so trailing commas land only
// where a sibling follows.
package renderer

import (
	"io"
	"strconv"
	"strings"

	"github.com/nclandrei/cviz/internal/models"
)

// Renderer writes value trees as indented JSON-syntax text. Configure it once
// and reuse it; it holds no per-document state.
type Renderer struct {
	indent  int
	palette *Palette
}

// New creates a Renderer with the given indent width (spaces per nesting
// level) and palette. Indent range validation happens at the CLI boundary,
// before any input is read.
func New(indent int, palette *Palette) *Renderer {
	return &Renderer{indent: indent, palette: palette}
}

// Render writes root as a complete document followed by a newline. The root
// must be an object, which main checks before calling here. The braces of
// the root object sit at column zero and its
// pairs at depth one; the root is the document body, not one more nested
// value.
func (r *Renderer) Render(w io.Writer, root models.Value) error {
	p := &printer{w: w}
	p.print("{\n")
	if root.Kind == models.KindObject && root.Object != nil {
		keys := root.Object.Keys()
		for i, key := range keys {
			val, _ := root.Object.Get(key)
			r.renderPair(p, key, val, 1, i == len(keys)-1)
		}
	}
	p.print("}\n")
	return p.err
}

// renderPair emits `"key": value` at the given depth.
func (r *Renderer) renderPair(p *printer, key string, v models.Value, depth int, last bool) {
	head := r.prefix(depth) + r.palette.Key.Sprint(quote(key)) + ": "
	r.renderValue(p, head, v, depth, last)
}

// renderElement emits a bare array element at the given depth.
func (r *Renderer) renderElement(p *printer, v models.Value, depth int, last bool) {
	r.renderValue(p, r.prefix(depth), v, depth, last)
}

// renderValue writes head (the line prefix, plus the key for object pairs)
// followed by the value itself. Scalars and empty containers finish on the
// same line; non-empty containers recurse one level deeper and close at the
// parent's depth.
func (r *Renderer) renderValue(p *printer, head string, v models.Value, depth int, last bool) {
	switch v.Kind {
	case models.KindNull:
		p.print(head + r.palette.Null.Sprint("null") + comma(last) + "\n")
	case models.KindBool:
		p.print(head + r.palette.Bool.Sprint(strconv.FormatBool(v.Bool)) + comma(last) + "\n")
	case models.KindNumber:
		p.print(head + r.palette.Number.Sprint(v.Number.String()) + comma(last) + "\n")
	case models.KindString:
		p.print(head + r.palette.String.Sprint(quote(v.Str)) + comma(last) + "\n")
	case models.KindArray:
		if len(v.Array) == 0 {
			p.print(head + "[]" + comma(last) + "\n")
			return
		}
		p.print(head + "[\n")
		for i, elem := range v.Array {
			r.renderElement(p, elem, depth+1, i == len(v.Array)-1)
		}
		p.print(r.prefix(depth) + "]" + comma(last) + "\n")
	case models.KindObject:
		if v.Object == nil || v.Object.Len() == 0 {
			p.print(head + "{}" + comma(last) + "\n")
			return
		}
		p.print(head + "{\n")
		keys := v.Object.Keys()
		for i, key := range keys {
			val, _ := v.Object.Get(key)
			r.renderPair(p, key, val, depth+1, i == len(keys)-1)
		}
		p.print(r.prefix(depth) + "}" + comma(last) + "\n")
	}
}

func (r *Renderer) prefix(depth int) string {
	return strings.Repeat(" ", depth*r.indent)
}

func comma(last bool) string {
	if last {
		return ""
	}
	return ","
}

// quote wraps s in double quotes. The source formats already guarantee the
// text is representable; no further escaping is applied.
func quote(s string) string {
	return `"` + s + `"`
}

// printer remembers the first write error so the render walk does not have to
// check every write.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
