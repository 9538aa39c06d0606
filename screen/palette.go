package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed RGB332 pixel value: bits 7-5 red, 4-2 green, 1-0 blue.
type Color uint8

const (
	ColorBlack        Color = 0x00
	ColorBlue         Color = 0x03
	ColorLightBlue    Color = 0x5F
	ColorGreen        Color = 0x1C
	ColorLightGreen   Color = 0x9E
	ColorCyan         Color = 0x1F
	ColorLightCyan    Color = 0xDF
	ColorRed          Color = 0xE0
	ColorLightRed     Color = 0xF2
	ColorMagenta      Color = 0xE3
	ColorLightMagenta Color = 0xF7
	ColorBrown        Color = 0x88
	ColorYellow       Color = 0xFC
	ColorGrey         Color = 0x92
	ColorWhite        Color = 0xFF
)

// Colorful expands the packed channels to the unit range.
func (c Color) Colorful() clr.Color {
	r, g, b := (c>>5)&0x7, (c>>2)&0x7, c&0x3
	return clr.Color{
		R: float64(r) / 7,
		G: float64(g) / 7,
		B: float64(b) / 3,
	}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Colorful().RGBA()
}

// Palette maps every Color value to its RGB equivalent, so a framebuffer
// can be wrapped by an image.Paletted without conversion.
var Palette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}()
