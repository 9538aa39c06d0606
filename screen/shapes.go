package screen

// DrawRectangle outlines the width x height rectangle whose top-left
// corner is (x, y).
func (s *Screen) DrawRectangle(x, y, width, height int, c Color) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidParameter
	}

	x2, y2 := x+width-1, y+height-1
	s.FastHLine(x, y, x2, c)
	s.FastHLine(x, y2, x2, c)
	if height > 2 {
		s.FastVLine(x, y+1, y2-1, c)
		s.FastVLine(x2, y+1, y2-1, c)
	}
	return nil
}

// FillRectangle fills the width x height rectangle whose top-left corner
// is (x, y).
func (s *Screen) FillRectangle(x, y, width, height int, c Color) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidParameter
	}
	s.fillRect(x, y, width, height, c)
	return nil
}

func (s *Screen) fillRect(x, y, width, height int, c Color) {
	for row := y; row < y+height; row++ {
		s.FastHLine(x, row, x+width-1, c)
	}
}

// DrawCircle outlines a circle with the midpoint algorithm.
func (s *Screen) DrawCircle(cx, cy, radius int, c Color) error {
	if radius <= 0 {
		return ErrInvalidParameter
	}
	midpoint(radius, func(x, y int) {
		_ = s.SetPixel(cx+x, cy+y, c)
		_ = s.SetPixel(cx+y, cy+x, c)
		_ = s.SetPixel(cx-y, cy+x, c)
		_ = s.SetPixel(cx-x, cy+y, c)
		_ = s.SetPixel(cx-x, cy-y, c)
		_ = s.SetPixel(cx-y, cy-x, c)
		_ = s.SetPixel(cx+y, cy-x, c)
		_ = s.SetPixel(cx+x, cy-y, c)
	})
	return nil
}

// FillCircle fills a circle using the same boundary trace as DrawCircle.
func (s *Screen) FillCircle(cx, cy, radius int, c Color) error {
	if radius <= 0 {
		return ErrInvalidParameter
	}
	s.fillCircle(cx, cy, radius, c)
	return nil
}

func (s *Screen) fillCircle(cx, cy, radius int, c Color) {
	midpoint(radius, func(x, y int) {
		s.FastHLine(cx-x, cy+y, cx+x, c)
		s.FastHLine(cx-x, cy-y, cx+x, c)
		s.FastHLine(cx-y, cy+x, cx+y, c)
		s.FastHLine(cx-y, cy-x, cx+y, c)
	})
}

// midpoint traces one octant of a circle of the given radius, from (r, 0)
// towards the diagonal, handing each point to plot.
func midpoint(radius int, plot func(x, y int)) {
	x, y, fraction := radius, 0, 0
	for x >= y {
		plot(x, y)
		if fraction <= 0 {
			y++
			fraction += 2*y + 1
		}
		if fraction > 0 {
			x--
			fraction -= 2*x + 1
		}
	}
}
