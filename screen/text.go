package screen

import (
	"image"

	"github.com/vgacore/vga/resource"
)

type TextStyle uint8

const (
	StyleNormal TextStyle = 0
	StyleBold   TextStyle = 1
	StyleItalic TextStyle = 2
)

func (s TextStyle) has(flag TextStyle) bool {
	return s&flag == flag
}

const (
	lineGap      = 2
	defaultWidth = 5
)

// DrawText renders text with its first line's top-left corner at (x, y)
// and returns the bounding box of all drawn glyphs.
//
// fontName selects a registered font, empty meaning the default. size
// scales every glyph pixel into a size x size block; zero is treated as
// one. '\n' starts a new line, '\r' is ignored and runes above 127 are
// drawn as '?'. Glyphs that would run past the right screen edge are moved
// to the next line first.
func (s *Screen) DrawText(x, y int, c Color, text, fontName string, size int, style TextStyle) (image.Rectangle, error) {
	font, err := resource.FontByName(fontName)
	if err != nil {
		return image.Rectangle{}, ErrInvalidParameter
	}
	if size <= 0 {
		size = 1
	}

	bold, italic := style.has(StyleBold), style.has(StyleItalic)
	lineHeight := font.Height * size

	italicShift := 0
	if italic {
		italicShift = font.Height / 2
	}
	boldExtra := 0
	if bold {
		boldExtra = size
	}

	bbox := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y)}
	first := true

	cx, cy := x, y
	for _, ch := range text {
		switch {
		case ch == '\n':
			cx, cy = x, cy+lineHeight+lineGap
			continue
		case ch == '\r':
			continue
		case ch >= 128:
			ch = '?'
		}

		glyph, ok := font.Glyph(ch)
		if !ok {
			cx += defaultWidth * size
			continue
		}

		glyphWidth := glyph.Width * size
		if cx > x && cx+glyphWidth+boldExtra > Width {
			cx, cy = x, cy+lineHeight+lineGap
		}

		blockWidth := size
		if bold {
			blockWidth++
		}
		for col := 0; col < glyph.Width; col++ {
			for row := 0; row < font.Height; row++ {
				if !glyph.Set(col, row) {
					continue
				}
				shift := 0
				if italic {
					shift = (font.Height - row) / 2
				}
				s.fillRect(cx+col*size+shift, cy+row*size, blockWidth, size, c)
			}
		}

		drawn := image.Rect(cx, cy, cx+glyphWidth+boldExtra+italicShift, cy+lineHeight)
		if first {
			bbox, first = drawn, false
		} else {
			bbox = bbox.Union(drawn)
		}

		cx += glyphWidth + size + boldExtra
	}

	return bbox, nil
}
