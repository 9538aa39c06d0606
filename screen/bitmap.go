package screen

import (
	"github.com/vgacore/vga/resource"
)

// DrawBitmap blits a registered bitmap with its top-left corner at (x, y).
// Transparent pixels are skipped; everything else goes through SetPixel, so
// the clip rectangle and the screen edge crop the image.
func (s *Screen) DrawBitmap(id, x, y int) error {
	bm, err := resource.BitmapByID(id)
	if err != nil {
		return ErrInvalidParameter
	}

	for by := 0; by < bm.Height; by++ {
		for bx := 0; bx < bm.Width; bx++ {
			if c := bm.At(bx, by); c != resource.Transparent {
				_ = s.SetPixel(x+bx, y+by, Color(c))
			}
		}
	}
	return nil
}
