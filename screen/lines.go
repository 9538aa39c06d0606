package screen

// DrawLine draws from (x1, y1) to (x2, y2). A thickness of 1 plots a
// single-pixel Bresenham line; larger thicknesses stamp a filled disk of
// radius thickness/2 on every step, which rounds the caps.
func (s *Screen) DrawLine(x1, y1, x2, y2 int, c Color, thickness int) error {
	if thickness <= 0 {
		return ErrInvalidParameter
	}
	if thickness == 1 {
		s.bresenham(x1, y1, x2, y2, func(x, y int) {
			_ = s.SetPixel(x, y, c)
		})
		return nil
	}

	r := thickness / 2
	s.bresenham(x1, y1, x2, y2, func(x, y int) {
		s.fillCircle(x, y, r, c)
	})
	return nil
}

// bresenham walks the integer line between both end points, inclusive,
// calling plot for each step.
func (s *Screen) bresenham(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx, sx := absInt(x2-x1), 1
	if x1 > x2 {
		sx = -1
	}
	dy, sy := -absInt(y2-y1), 1
	if y1 > y2 {
		sy = -1
	}

	fraction := dx + dy
	for {
		plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * fraction
		if e2 >= dy {
			fraction += dy
			x1 += sx
		}
		if e2 <= dx {
			fraction += dx
			y1 += sy
		}
	}
}
