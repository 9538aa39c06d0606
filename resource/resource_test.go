package resource

import (
	"errors"
	"strings"
	"testing"
)

func TestFontByName(t *testing.T) {
	cases := []struct {
		name     string
		expected *Font
	}{
		{"", DefaultFont},
		{"consolas", Consolas},
		{"arial", Arial},
	}
	for _, tc := range cases {
		f, err := FontByName(tc.name)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.name, err)
		}
		if f != tc.expected {
			t.Errorf("%q: expected %s, got %s", tc.name, tc.expected.Name, f.Name)
		}
	}

	_, err := FontByName("comic")
	var unknown UnknownError
	if !errors.As(err, &unknown) || unknown.Type != TypeFont {
		t.Errorf("expected unknown font error, got %v", err)
	}
}

func TestConsolasGlyphs(t *testing.T) {
	g, ok := Consolas.Glyph('I')
	if !ok {
		t.Fatal("expected glyph for 'I'")
	}
	if g.Width != FixedGlyphWidth {
		t.Errorf("expected width %d, got %d", FixedGlyphWidth, g.Width)
	}
	for row := 0; row < 7; row++ {
		if !g.Set(2, row) {
			t.Errorf("expected stem pixel at row %d", row)
		}
	}
	if _, ok := Consolas.Glyph('\t'); ok {
		t.Error("control characters should not have glyphs")
	}
	if _, ok := Consolas.Glyph(200); ok {
		t.Error("runes past 127 should not have glyphs")
	}
}

func TestArialIsProportional(t *testing.T) {
	if Arial.Height != 13 {
		t.Errorf("expected height 13, got %d", Arial.Height)
	}
	i, ok := Arial.Glyph('!')
	if !ok {
		t.Fatal("expected glyph for '!'")
	}
	m, ok := Arial.Glyph('M')
	if !ok {
		t.Fatal("expected glyph for 'M'")
	}
	if i.Width >= m.Width {
		t.Errorf("expected '!' (%d) narrower than 'M' (%d)", i.Width, m.Width)
	}
	if sp, ok := Arial.Glyph(' '); !ok || sp.Width != spaceWidth {
		t.Errorf("expected blank space glyph of width %d", spaceWidth)
	}
	if art := Arial.Art('M'); !strings.Contains(art, "█") {
		t.Errorf("expected inked art, got %q", art)
	}
}

func TestBitmaps(t *testing.T) {
	if len(Bitmaps) != 6 {
		t.Fatalf("expected 6 bitmaps, got %d", len(Bitmaps))
	}
	for id, bm := range Bitmaps {
		if bm.Width != 16 || bm.Height != 16 {
			t.Errorf("%d: unexpected size %dx%d", id, bm.Width, bm.Height)
		}
	}

	up := Bitmaps[BitmapArrowUp]
	if up.At(0, 0) != Transparent {
		t.Error("expected transparent corner")
	}
	if up.At(7, 0) != rgbWhite || up.At(8, 0) != rgbWhite {
		t.Error("expected arrow tip at top center")
	}

	right := Bitmaps[BitmapArrowRight]
	if right.At(15, 7) != rgbWhite || right.At(15, 8) != rgbWhite {
		t.Error("expected arrow tip at right center")
	}
	down := Bitmaps[BitmapArrowDown]
	if down.At(7, 15) != rgbWhite || down.At(0, 0) != Transparent {
		t.Error("expected arrow tip at bottom center")
	}
	left := Bitmaps[BitmapArrowLeft]
	if left.At(0, 7) != rgbWhite || left.At(15, 0) != Transparent {
		t.Error("expected arrow tip at left center")
	}

	happy := Bitmaps[BitmapSmileyHappy]
	if happy.At(7, 7) != rgbYellow || happy.At(5, 0) != rgbBlack {
		t.Error("unexpected smiley colors")
	}
}

func TestBitmapByID(t *testing.T) {
	if _, err := BitmapByID(BitmapSmileyHappy); err != nil {
		t.Fatal(err)
	}
	for _, id := range []int{-1, 6, 100} {
		_, err := BitmapByID(id)
		var unknown UnknownError
		if !errors.As(err, &unknown) || unknown.Type != TypeBitmap {
			t.Errorf("%d: expected unknown bitmap error, got %v", id, err)
		}
	}
}

func TestUnpackRejectsRaggedTemplate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	unpack("bad", packedPalette{}, "ff\nfff0\n")
}
