package style

import (
	"testing"

	"github.com/vgacore/vga/screen"
)

func TestResolveColor(t *testing.T) {
	cases := []struct {
		name     string
		expected screen.Color
	}{
		{"zwart", 0x00},
		{"blauw", 0x03},
		{"lichtblauw", 0x5F},
		{"groen", 0x1C},
		{"lichtgroen", 0x9E},
		{"cyaan", 0x1F},
		{"lichtcyaan", 0xDF},
		{"rood", 0xE0},
		{"lichtrood", 0xF2},
		{"magenta", 0xE3},
		{"lichtmagenta", 0xF7},
		{"bruin", 0x88},
		{"geel", 0xFC},
		{"grijs", 0x92},
		{"wit", 0xFF},
	}

	for _, c := range cases {
		actual, err := ResolveColor(c.name)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
			continue
		}
		if actual != c.expected {
			t.Errorf("%s: expected %#x, got %#x", c.name, c.expected, actual)
		}
	}

	if len(Colors()) != len(cases) {
		t.Errorf("expected %d colors, got %d", len(cases), len(Colors()))
	}
}

func TestResolveColorRejects(t *testing.T) {
	for _, name := range []string{"", "Rood", "paars", " rood"} {
		if _, err := ResolveColor(name); err != ErrInvalidColor {
			t.Errorf("%q: expected %v, got %v", name, ErrInvalidColor, err)
		}
		if IsValidColor(name) {
			t.Errorf("%q reported valid", name)
		}
	}
}

func TestFontsAndStyles(t *testing.T) {
	for _, name := range []string{"arial", "consolas"} {
		if !IsValidFont(name) {
			t.Errorf("%s should be valid", name)
		}
	}
	for _, name := range []string{"", "Arial", "times"} {
		if IsValidFont(name) {
			t.Errorf("%q should be invalid", name)
		}
	}

	cases := []struct {
		name  string
		flags screen.TextStyle
	}{
		{"normaal", screen.StyleNormal},
		{"vet", screen.StyleBold},
		{"cursief", screen.StyleItalic},
	}
	for _, c := range cases {
		if !IsValidStyle(c.name) {
			t.Errorf("%s should be valid", c.name)
		}
		if actual := StyleFlags(c.name); actual != c.flags {
			t.Errorf("%s: expected %d, got %d", c.name, c.flags, actual)
		}
	}
	if IsValidStyle("onderstreept") {
		t.Errorf("unknown style reported valid")
	}
}
