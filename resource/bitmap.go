package resource

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/32bitkid/bitreader"
)

// Transparent marks bitmap pixels that are never drawn. It is not a
// drawable color.
const Transparent uint8 = 0xFE

// Bitmap ids.
const (
	BitmapArrowUp = iota
	BitmapArrowRight
	BitmapArrowDown
	BitmapArrowLeft
	BitmapSmileyAngry
	BitmapSmileyHappy
)

type Bitmap struct {
	Name          string
	Width, Height int
	Pix           []uint8
}

func (b *Bitmap) At(x, y int) uint8 {
	return b.Pix[y*b.Width+x]
}

func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) == Transparent {
				sb.WriteString(" ")
			} else {
				sb.WriteString("█")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Bitmaps is the registered bitmap table, indexed by bitmap id.
var Bitmaps []*Bitmap

// BitmapByID returns the registered bitmap with the given id.
func BitmapByID(id int) (*Bitmap, error) {
	if id < 0 || id >= len(Bitmaps) {
		return nil, UnknownError{Type: TypeBitmap, Key: strconv.Itoa(id)}
	}
	return Bitmaps[id], nil
}

// packedPalette maps the 4-bit indices of a packed bitmap to colors.
// Index 0xF is always transparent.
type packedPalette [15]uint8

// unpack decodes a template of hex rows, one nibble per pixel.
func unpack(name string, palette packedPalette, template string) *Bitmap {
	var rows []string
	for _, l := range strings.Split(strings.Trim(template, "\n"), "\n") {
		rows = append(rows, strings.TrimSpace(l))
	}

	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			panic(fmt.Errorf("invalid template %q: row width %d != %d", name, len(row), width))
		}
	}
	if width%2 != 0 {
		panic(fmt.Errorf("invalid template %q: odd width %d", name, width))
	}

	packed, err := hex.DecodeString(strings.Join(rows, ""))
	if err != nil {
		panic(fmt.Errorf("invalid template %q: %v", name, err))
	}

	bm := &Bitmap{
		Name:   name,
		Width:  width,
		Height: len(rows),
		Pix:    make([]uint8, width*len(rows)),
	}

	br := bitreader.NewReader(bytes.NewReader(packed))
	for i := range bm.Pix {
		idx, err := br.Read8(4)
		if err != nil {
			panic(fmt.Errorf("invalid template %q: %v", name, err))
		}
		if idx == 0xF {
			bm.Pix[i] = Transparent
		} else {
			bm.Pix[i] = palette[idx]
		}
	}
	return bm
}

// rotate returns b turned a quarter clockwise.
func rotate(name string, b *Bitmap) *Bitmap {
	r := &Bitmap{
		Name:   name,
		Width:  b.Height,
		Height: b.Width,
		Pix:    make([]uint8, len(b.Pix)),
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			r.Pix[y*r.Width+x] = b.At(y, b.Height-1-x)
		}
	}
	return r
}

const (
	rgbBlack  = 0x00
	rgbWhite  = 0xFF
	rgbRed    = 0xE0
	rgbYellow = 0xFC
)

const arrowTemplate = `
fffffff00fffffff
ffffff0000ffffff
fffff000000fffff
ffff00000000ffff
fff0000000000fff
ff000000000000ff
f00000000000000f
0000000000000000
fffff000000fffff
fffff000000fffff
fffff000000fffff
fffff000000fffff
fffff000000fffff
fffff000000fffff
fffff000000fffff
fffff000000fffff
`

const angryTemplate = `
fffff000000fffff
fff0011111100fff
ff011111111110ff
f01011111111010f
f01101111110110f
0111001111001110
0111001111001110
0111111111111110
0111111111111110
0111100000011110
0111011111101110
f01011111111010f
f01111111111110f
ff011111111110ff
fff0011111100fff
fffff000000fffff
`

const happyTemplate = `
fffff000000fffff
fff0011111100fff
ff011111111110ff
f01111111111110f
f01100111100110f
0111001111001110
0111111111111110
0111111111111110
0110111111110110
0111011111101110
0111101111011110
f01110000001110f
f01111111111110f
ff011111111110ff
fff0011111100fff
fffff000000fffff
`

func init() {
	up := unpack("arrow-up", packedPalette{rgbWhite}, arrowTemplate)
	right := rotate("arrow-right", up)
	down := rotate("arrow-down", right)
	left := rotate("arrow-left", down)

	Bitmaps = []*Bitmap{
		BitmapArrowUp:     up,
		BitmapArrowRight:  right,
		BitmapArrowDown:   down,
		BitmapArrowLeft:   left,
		BitmapSmileyAngry: unpack("smiley-angry", packedPalette{rgbBlack, rgbRed}, angryTemplate),
		BitmapSmileyHappy: unpack("smiley-happy", packedPalette{rgbBlack, rgbYellow}, happyTemplate),
	}
}
