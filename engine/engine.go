// Package engine validates drawing commands, executes them against a
// renderer and records the successful ones for replay.
package engine

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/vgacore/vga/command"
	"github.com/vgacore/vga/internal/logger"
	"github.com/vgacore/vga/resource"
	"github.com/vgacore/vga/screen"
	"github.com/vgacore/vga/style"
)

// MaxTextLength is the longest text, in bytes, a text command may carry.
const MaxTextLength = 100

// Renderer is the set of raster primitives the engine draws with.
// *screen.Screen implements it.
type Renderer interface {
	DrawLine(x1, y1, x2, y2 int, c screen.Color, thickness int) error
	DrawRectangle(x, y, width, height int, c screen.Color) error
	FillRectangle(x, y, width, height int, c screen.Color) error
	DrawText(x, y int, c screen.Color, text, fontName string, size int, style screen.TextStyle) (image.Rectangle, error)
	DrawBitmap(id, x, y int) error
	DrawCircle(cx, cy, radius int, c screen.Color) error
	FillScreen(c screen.Color)
}

type Engine struct {
	renderer   Renderer
	history    *command.History
	delay      func(time.Duration)
	logRepeats bool
}

// New returns an engine drawing on r. A nil history gets a fresh one.
func New(r Renderer, history *command.History, opts ...Option) *Engine {
	if history == nil {
		history = &command.History{}
	}
	e := &Engine{
		renderer: r,
		history:  history,
		delay:    time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) History() *command.History { return e.history }

// Execute validates and runs c. Only commands that complete without error
// are appended to the history.
func (e *Engine) Execute(c command.Command) error {
	switch c := c.(type) {
	case command.Line:
		return e.Line(c)
	case command.Rectangle:
		return e.Rectangle(c)
	case command.Text:
		return e.Text(c)
	case command.Bitmap:
		return e.Bitmap(c)
	case command.ClearScreen:
		return e.ClearScreen(c)
	case command.Wait:
		return e.Wait(c)
	case command.Repeat:
		return e.Repeat(c)
	case command.Circle:
		return e.Circle(c)
	case command.Figure:
		return e.Figure(c)
	default:
		return ErrInvalidParam
	}
}

func onScreen(x, y int) bool {
	return x >= 0 && x < screen.Width && y >= 0 && y < screen.Height
}

func validColor(name string) error {
	if !style.IsValidColor(name) {
		return ErrInvalidColor
	}
	return nil
}

func (e *Engine) Line(c command.Line) error {
	switch {
	case !onScreen(c.X1, c.Y1) || !onScreen(c.X2, c.Y2):
		return e.reject(c, ErrOutOfBounds)
	case c.Thickness <= 0:
		return e.reject(c, ErrInvalidThickness)
	}
	if err := validColor(c.Color); err != nil {
		return e.reject(c, err)
	}
	return e.commit(c)
}

func (e *Engine) Rectangle(c command.Rectangle) error {
	switch {
	case !onScreen(c.X, c.Y) || c.Width > screen.Width-c.X || c.Height > screen.Height-c.Y:
		return e.reject(c, ErrOutOfBounds)
	case c.Width <= 0 || c.Height <= 0:
		return e.reject(c, ErrInvalidSize)
	case c.Filled != 0 && c.Filled != 1:
		return e.reject(c, ErrInvalidFilled)
	}
	if err := validColor(c.Color); err != nil {
		return e.reject(c, err)
	}
	return e.commit(c)
}

func (e *Engine) Text(c command.Text) error {
	switch {
	case !onScreen(c.X, c.Y):
		return e.reject(c, ErrOutOfBounds)
	case c.Size != 1 && c.Size != 2:
		return e.reject(c, ErrInvalidFontSize)
	case !style.IsValidColor(c.Color):
		return e.reject(c, ErrInvalidColor)
	case !style.IsValidFont(c.Font):
		return e.reject(c, ErrInvalidFontName)
	case !style.IsValidStyle(c.Style):
		return e.reject(c, ErrInvalidFontStyle)
	case len(c.Text) > MaxTextLength:
		return e.reject(c, ErrTextTooLong)
	}
	return e.commit(c)
}

func (e *Engine) Bitmap(c command.Bitmap) error {
	switch {
	case !onScreen(c.X, c.Y):
		return e.reject(c, ErrOutOfBounds)
	case c.ID < 0 || c.ID > maxBitmapID():
		return e.reject(c, ErrInvalidParam)
	}
	return e.commit(c)
}

func (e *Engine) ClearScreen(c command.ClearScreen) error {
	if err := validColor(c.Color); err != nil {
		return e.reject(c, err)
	}
	return e.commit(c)
}

func (e *Engine) Wait(c command.Wait) error {
	if c.Milliseconds < 0 {
		return e.reject(c, ErrInvalidParam)
	}
	return e.commit(c)
}

func (e *Engine) Circle(c command.Circle) error {
	switch {
	case c.Radius <= 0:
		return e.reject(c, ErrInvalidParam)
	case !onScreen(c.X, c.Y) ||
		c.Radius > c.X || c.Radius >= screen.Width-c.X ||
		c.Radius > c.Y || c.Radius >= screen.Height-c.Y:
		return e.reject(c, ErrOutOfBounds)
	}
	if err := validColor(c.Color); err != nil {
		return e.reject(c, err)
	}
	return e.commit(c)
}

// Figure draws the closed outline through all five vertices.
func (e *Engine) Figure(c command.Figure) error {
	for _, p := range c.Points {
		if !onScreen(p.X, p.Y) {
			return e.reject(c, ErrOutOfBounds)
		}
	}
	if err := validColor(c.Color); err != nil {
		return e.reject(c, err)
	}
	return e.commit(c)
}

// Repeat replays the last c.Count recorded commands, c.Times times, in the
// order they were first executed. Replayed commands skip validation and
// are not recorded again; recorded repeats are skipped.
func (e *Engine) Repeat(c command.Repeat) error {
	switch {
	case c.Count < 1 || c.Count > e.history.Len() || c.Times < 1:
		return e.reject(c, ErrInvalidParam)
	}

	entries := e.history.Last(c.Count)
	logger.Logger().Info("replaying history",
		slog.Int("count", c.Count),
		slog.Int("times", c.Times))

	for t := 0; t < c.Times; t++ {
		for _, entry := range entries {
			if entry.Kind() == command.KindRepeat {
				continue
			}
			if err := e.render(entry); err != nil {
				logger.Logger().Debug("replay failed",
					slog.String("command", entry.Kind().String()),
					slog.Any("error", err))
				return err
			}
		}
	}

	if e.logRepeats {
		e.history.Append(c)
	}
	return nil
}

func (e *Engine) reject(c command.Command, err error) error {
	logger.Logger().Debug("command rejected",
		slog.String("command", c.Kind().String()),
		slog.Any("error", err))
	return err
}

// commit renders an already validated command and records it on success.
func (e *Engine) commit(c command.Command) error {
	if err := e.render(c); err != nil {
		return e.reject(c, err)
	}
	e.history.Append(c)
	logger.Logger().Debug("command executed",
		slog.String("command", c.Kind().String()),
		slog.String("args", fmt.Sprintf("%+v", c)))
	return nil
}

// render draws c without validating it. Colors that fail to resolve fall
// back to black; callers validate them first.
func (e *Engine) render(c command.Command) error {
	r := e.renderer
	switch c := c.(type) {
	case command.Line:
		return driverError(r.DrawLine(c.X1, c.Y1, c.X2, c.Y2, color(c.Color), c.Thickness))
	case command.Rectangle:
		if c.Filled == 1 {
			return driverError(r.FillRectangle(c.X, c.Y, c.Width, c.Height, color(c.Color)))
		}
		return driverError(r.DrawRectangle(c.X, c.Y, c.Width, c.Height, color(c.Color)))
	case command.Text:
		_, err := r.DrawText(c.X, c.Y, color(c.Color), c.Text, c.Font, c.Size, style.StyleFlags(c.Style))
		return driverError(err)
	case command.Bitmap:
		return driverError(r.DrawBitmap(c.ID, c.X, c.Y))
	case command.ClearScreen:
		r.FillScreen(color(c.Color))
		return nil
	case command.Wait:
		e.delay(time.Duration(c.Milliseconds) * time.Millisecond)
		return nil
	case command.Circle:
		return driverError(r.DrawCircle(c.X, c.Y, c.Radius, color(c.Color)))
	case command.Figure:
		col := color(c.Color)
		for i, p := range c.Points {
			q := c.Points[(i+1)%len(c.Points)]
			if err := r.DrawLine(p.X, p.Y, q.X, q.Y, col, 1); err != nil {
				return driverError(err)
			}
		}
		return nil
	default:
		return ErrInvalidParam
	}
}

func maxBitmapID() int {
	return len(resource.Bitmaps) - 1
}

func color(name string) screen.Color {
	c, _ := style.ResolveColor(name)
	return c
}
