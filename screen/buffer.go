// Package screen implements the raster primitives of a 320x240 RGB332
// framebuffer: pixels, spans, lines, rectangles, circles, text and bitmaps,
// all clipped against an adjustable clip rectangle.
package screen

import (
	"image"
)

const (
	Width  = 320
	Height = 240

	// Every row carries one trailing padding byte that the video output
	// stage expects to be zero.
	stride = Width + 1
)

var screenBounds = image.Rect(0, 0, Width, Height)

type Screen struct {
	pix  []uint8
	clip image.Rectangle
}

// New returns a black screen with the clip rectangle covering the full
// screen.
func New() *Screen {
	s := &Screen{pix: make([]uint8, stride*Height)}
	s.ResetClipRect()
	return s
}

func (s *Screen) Bounds() image.Rectangle { return screenBounds }

func (s *Screen) ClipRect() image.Rectangle { return s.clip }

// SetClipRect restricts drawing to r. The rectangle is clamped to the
// screen; an empty result suppresses all writes until the next reset.
func (s *Screen) SetClipRect(r image.Rectangle) {
	s.clip = r.Canon().Intersect(screenBounds)
}

func (s *Screen) ResetClipRect() {
	s.clip = screenBounds
}

// FillScreen writes c to every visible pixel, ignoring the clip rectangle.
func (s *Screen) FillScreen(c Color) {
	for i := range s.pix {
		s.pix[i] = uint8(c)
	}
	for y := 0; y < Height; y++ {
		s.pix[y*stride+Width] = 0
	}
}

// At returns the color at (x, y), or black outside the screen.
func (s *Screen) At(x, y int) Color {
	if !image.Pt(x, y).In(screenBounds) {
		return ColorBlack
	}
	return Color(s.pix[y*stride+x])
}

// SetPixel writes a single pixel. Coordinates outside the screen are an
// error; coordinates inside the screen but outside the clip rectangle are
// silently dropped.
func (s *Screen) SetPixel(x, y int, c Color) error {
	p := image.Pt(x, y)
	if !p.In(screenBounds) {
		return ErrInvalidCoordinate
	}
	if !p.In(s.clip) {
		return nil
	}
	s.pix[y*stride+x] = uint8(c)
	return nil
}

// FastHLine fills the span x0..x1 (inclusive, either order) on row y.
func (s *Screen) FastHLine(x0, y, x1 int, c Color) {
	if y < s.clip.Min.Y || y >= s.clip.Max.Y {
		return
	}
	start := max(min(x0, x1), s.clip.Min.X)
	end := min(max(x0, x1), s.clip.Max.X-1)
	if start > end {
		return
	}
	row := s.pix[y*stride : y*stride+Width]
	for x := start; x <= end; x++ {
		row[x] = uint8(c)
	}
}

// FastVLine fills the span y0..y1 (inclusive, either order) on column x.
func (s *Screen) FastVLine(x, y0, y1 int, c Color) {
	if x < s.clip.Min.X || x >= s.clip.Max.X {
		return
	}
	start := max(min(y0, y1), s.clip.Min.Y)
	end := min(max(y0, y1), s.clip.Max.Y-1)
	for y := start; y <= end; y++ {
		s.pix[y*stride+x] = uint8(c)
	}
}

// Image wraps the framebuffer, padding column excluded, without copying.
func (s *Screen) Image() *image.Paletted {
	return &image.Paletted{
		Pix:     s.pix,
		Stride:  stride,
		Rect:    screenBounds,
		Palette: Palette,
	}
}

// Pix returns a copy of the framebuffer including the padding column.
func (s *Screen) Pix() []uint8 {
	out := make([]uint8, len(s.pix))
	copy(out, s.pix)
	return out
}
