package resource

import (
	"golang.org/x/image/font/basicfont"
)

// spaceWidth is the advance given to glyphs that have no inked columns.
const spaceWidth = 3

// Arial is a proportional font cut from basicfont.Face7x13: every glyph is
// trimmed to its inked columns.
var Arial = newProportionalFont("arial", basicfont.Face7x13)

func newProportionalFont(name string, face *basicfont.Face) *Font {
	f := &Font{Name: name, Height: face.Height}

	for _, rr := range face.Ranges {
		for r := rr.Low; r < rr.High && r < 128; r++ {
			top := (int(r-rr.Low) + rr.Offset) * face.Height

			columns := make([]uint16, face.Width)
			for x := 0; x < face.Width; x++ {
				var bits uint16
				for y := 0; y < face.Height && y < 16; y++ {
					if _, _, _, a := face.Mask.At(x, top+y).RGBA(); a >= 0x8000 {
						bits |= 1 << uint(y)
					}
				}
				columns[x] = bits
			}

			left, right := 0, len(columns)
			for left < right && columns[left] == 0 {
				left++
			}
			for right > left && columns[right-1] == 0 {
				right--
			}

			if left == right {
				f.glyphs[r] = Glyph{Width: spaceWidth, Columns: make([]uint16, spaceWidth)}
				continue
			}
			trimmed := columns[left:right]
			f.glyphs[r] = Glyph{Width: len(trimmed), Columns: trimmed}
		}
	}
	return f
}
