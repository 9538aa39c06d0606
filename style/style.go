// Package style resolves the color, font and text style names accepted by
// drawing commands.
package style

import (
	"errors"

	"github.com/vgacore/vga/resource"
	"github.com/vgacore/vga/screen"
)

var ErrInvalidColor = errors.New("invalid color")

type namedColor struct {
	name  string
	color screen.Color
}

var colors = []namedColor{
	{"zwart", screen.ColorBlack},
	{"blauw", screen.ColorBlue},
	{"lichtblauw", screen.ColorLightBlue},
	{"groen", screen.ColorGreen},
	{"lichtgroen", screen.ColorLightGreen},
	{"cyaan", screen.ColorCyan},
	{"lichtcyaan", screen.ColorLightCyan},
	{"rood", screen.ColorRed},
	{"lichtrood", screen.ColorLightRed},
	{"magenta", screen.ColorMagenta},
	{"lichtmagenta", screen.ColorLightMagenta},
	{"bruin", screen.ColorBrown},
	{"geel", screen.ColorYellow},
	{"grijs", screen.ColorGrey},
	{"wit", screen.ColorWhite},
}

// Text style names.
const (
	Normal = "normaal"
	Bold   = "vet"
	Italic = "cursief"
)

// ResolveColor maps a color name to its RGB332 value. Names are matched
// exactly; there is no fallback color.
func ResolveColor(name string) (screen.Color, error) {
	for _, c := range colors {
		if c.name == name {
			return c.color, nil
		}
	}
	return 0, ErrInvalidColor
}

func IsValidColor(name string) bool {
	_, err := ResolveColor(name)
	return err == nil
}

// IsValidFont reports whether name is a registered font. Unlike the text
// renderer, an empty name is not accepted here.
func IsValidFont(name string) bool {
	if name == "" {
		return false
	}
	_, err := resource.FontByName(name)
	return err == nil
}

func IsValidStyle(name string) bool {
	switch name {
	case Normal, Bold, Italic:
		return true
	}
	return false
}

// StyleFlags converts a style name to renderer flags. Unknown names render
// as normal text.
func StyleFlags(name string) screen.TextStyle {
	switch name {
	case Bold:
		return screen.StyleBold
	case Italic:
		return screen.StyleItalic
	}
	return screen.StyleNormal
}

// Colors lists the accepted color names in table order.
func Colors() []string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.name
	}
	return names
}
