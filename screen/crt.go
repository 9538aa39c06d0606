package screen

import (
	"image"
	"image/color"
)

const crtScale = 4

// scanline darkening per sub-row of a scaled pixel.
var scanlines = [crtScale]float64{0.45, 0.05, 0, 0.25}

// horizontal bleed from the left neighbour per sub-column.
var bleed = [crtScale]float64{0.5, 0.75, 1, 1}

type crtCell [crtScale * crtScale]color.RGBA

func crtRender(left, c, right Color) *crtCell {
	var cell crtCell
	for iy := 0; iy < crtScale; iy++ {
		for ix := 0; ix < crtScale; ix++ {
			var co color.Color = c
			switch {
			case bleed[ix] < 1:
				co = rgbMix(left, c, bleed[ix])
			case ix == crtScale-1 && right != c:
				co = rgbMix(c, right, 0.15)
			}
			if d := scanlines[iy]; d > 0 {
				co = darken(co, d)
			}
			cell[iy*crtScale+ix] = color.RGBAModel.Convert(co).(color.RGBA)
		}
	}
	return &cell
}

// RenderToCRT upscales the screen by four and approximates the look of an
// analog monitor: neighbouring pixels bleed into each other horizontally
// and every scaled row gets a dark scanline band.
func (s *Screen) RenderToCRT() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, Width*crtScale, Height*crtScale))
	cells := make(map[[3]Color]*crtCell)

	for sy := 0; sy < Height; sy++ {
		for sx := 0; sx < Width; sx++ {
			key := [3]Color{
				s.At(clampInt(0, Width-1, sx-1), sy),
				s.At(sx, sy),
				s.At(clampInt(0, Width-1, sx+1), sy),
			}
			cell, ok := cells[key]
			if !ok {
				cell = crtRender(key[0], key[1], key[2])
				cells[key] = cell
			}
			for i, co := range cell {
				dst.SetRGBA(sx*crtScale+i%crtScale, sy*crtScale+i/crtScale, co)
			}
		}
	}
	return dst
}
