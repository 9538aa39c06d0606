package resource

import (
	"strings"
)

// FixedGlyphWidth is the column count of every glyph in a fixed-width font.
const FixedGlyphWidth = 5

// Glyph is a single character bitmap stored column by column. Bit 0 of
// each column is the top row.
type Glyph struct {
	Width   int
	Columns []uint16
}

func (g Glyph) Set(col, row int) bool {
	if col < 0 || col >= len(g.Columns) {
		return false
	}
	return (g.Columns[col]>>uint(row))&1 == 1
}

func (g Glyph) render(height int) string {
	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Set(col, row) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Font is a read-only glyph table covering the 7-bit character range.
type Font struct {
	Name   string
	Height int
	Fixed  bool

	glyphs [128]Glyph
}

// Glyph returns the glyph for r. Characters without glyph data report false.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if r < 0 || r >= 128 {
		return Glyph{}, false
	}
	g := f.glyphs[r]
	if g.Width == 0 || g.Columns == nil {
		return Glyph{}, false
	}
	return g, true
}

// Art renders the glyph for r as block characters, one line per row.
func (f *Font) Art(r rune) string {
	g, ok := f.Glyph(r)
	if !ok {
		return ""
	}
	return g.render(f.Height)
}

var Fonts = []*Font{
	Consolas,
	Arial,
}

// DefaultFont is used when no font name is given.
var DefaultFont = Fonts[0]

// FontByName looks up a registered font. An empty name selects DefaultFont.
func FontByName(name string) (*Font, error) {
	if name == "" {
		return DefaultFont, nil
	}
	for _, f := range Fonts {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, UnknownError{Type: TypeFont, Key: name}
}
