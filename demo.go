package vga

import (
	"image"

	"github.com/vgacore/vga/screen"
)

// RunDemo draws a test card exercising fills, thick lines, clipping and
// styled text directly on the framebuffer. The history is left untouched.
func (d *Device) RunDemo() {
	s := d.screen
	s.ResetClipRect()
	s.FillScreen(screen.ColorBlue)

	_ = s.FillCircle(40, 40, 30, screen.ColorYellow)
	_ = s.FillRectangle(250, 20, 50, 40, screen.ColorGreen)

	_ = s.DrawLine(10, 230, 110, 100, screen.ColorLightCyan, 1)
	_ = s.DrawLine(20, 230, 120, 100, screen.ColorLightCyan, 4)
	_ = s.DrawLine(30, 230, 130, 100, screen.ColorLightCyan, 8)
	_ = s.DrawLine(40, 230, 140, 100, screen.ColorCyan, 12)

	clip := image.Rect(80, 60, 240, 180)
	s.SetClipRect(clip)
	_ = s.DrawLine(0, 0, screen.Width-1, screen.Height-1, screen.ColorRed, 3)
	_, _ = s.DrawText(60, 100, screen.ColorWhite, "Clipped Text", "", 2, screen.StyleNormal)
	s.ResetClipRect()
	_ = s.DrawRectangle(clip.Min.X, clip.Min.Y, clip.Dx(), clip.Dy(), screen.ColorWhite)

	_, _ = s.DrawText(120, 10, screen.ColorWhite, "Normal Text", "", 1, screen.StyleNormal)
	_, _ = s.DrawText(10, 80, screen.ColorYellow, "Bold!", "", 2, screen.StyleBold)
	_, _ = s.DrawText(200, 80, screen.ColorLightGreen, "Italic!", "arial", 2, screen.StyleItalic)

	bbox, _ := s.DrawText(140, 200, screen.ColorLightMagenta, "Bounds Test", "arial", 2, screen.StyleBold|screen.StyleItalic)
	bbox = bbox.Inset(-2)
	_ = s.DrawRectangle(bbox.Min.X, bbox.Min.Y, bbox.Dx(), bbox.Dy(), screen.ColorGrey)

	d.changed()
}
