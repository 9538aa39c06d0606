// Package vga implements a command driven renderer for a 320x240 display
// with one RGB332 byte per pixel.
//
// Drawing commands arrive as comma separated text lines, such as
// "lijn,0,0,100,100,rood,2". Each line is parsed, validated against the
// screen and the known colors, fonts and bitmaps, and drawn into the
// framebuffer. The last twenty successful commands are kept so that
// "herhaal" can replay them.
package vga

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/vgacore/vga/command"
	"github.com/vgacore/vga/engine"
	"github.com/vgacore/vga/internal/logger"
	"github.com/vgacore/vga/protocol"
	"github.com/vgacore/vga/screen"
)

// Device bundles a framebuffer with the engine and protocol handler that
// draw on it. It is not safe for concurrent use.
type Device struct {
	screen  *screen.Screen
	engine  *engine.Engine
	handler *protocol.Handler

	onChange func(*screen.Screen)
}

type config struct {
	engineOpts []engine.Option
	onChange   func(*screen.Screen)
}

type Option func(*config)

// WithDelay replaces the function used by wait commands.
func WithDelay(delay func(time.Duration)) Option {
	return func(c *config) {
		c.engineOpts = append(c.engineOpts, engine.WithDelay(delay))
	}
}

// WithRepeatLogging records repeat commands in the history.
func WithRepeatLogging(enabled bool) Option {
	return func(c *config) {
		c.engineOpts = append(c.engineOpts, engine.WithRepeatLogging(enabled))
	}
}

// WithOnChange registers a function called after every command that
// reached the renderer, on the goroutine that executed it.
func WithOnChange(fn func(*screen.Screen)) Option {
	return func(c *config) {
		c.onChange = fn
	}
}

func New(opts ...Option) *Device {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Device{
		screen:   screen.New(),
		onChange: cfg.onChange,
	}
	d.engine = engine.New(d.screen, &command.History{}, cfg.engineOpts...)
	d.handler = protocol.NewHandler(d)
	return d
}

func (d *Device) Screen() *screen.Screen { return d.screen }

func (d *Device) History() *command.History { return d.engine.History() }

// Execute runs a single command.
func (d *Device) Execute(c command.Command) error {
	err := d.engine.Execute(c)
	if err == nil || isDriverError(err) {
		d.changed()
	}
	return err
}

// Handle processes one protocol line and returns the response line.
func (d *Device) Handle(line string) string {
	return d.handler.Handle(line)
}

// Serve answers protocol lines from r on w until r is exhausted or ctx is
// done.
func (d *Device) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	return d.handler.Serve(ctx, r, w)
}

func (d *Device) changed() {
	if d.onChange != nil {
		d.onChange(d.screen)
	}
}

func isDriverError(err error) bool {
	e, ok := err.(engine.Error)
	return ok && e.Driver()
}

// SetLogger sets the logger used by all vga packages. Passing nil restores
// the default, which discards everything.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

func Logger() *slog.Logger {
	return logger.Logger()
}
