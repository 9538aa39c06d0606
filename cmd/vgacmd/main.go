// Command vgacmd drives the renderer from a serial port, a Lua script or
// standard input, optionally mirroring the screen in the terminal and
// saving a snapshot on exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"go.bug.st/serial"
	"golang.org/x/term"

	"github.com/vgacore/vga"
	"github.com/vgacore/vga/preview"
	"github.com/vgacore/vga/script"
)

var (
	serialDevice = flag.String("serial", "", "serial device to read commands from")
	baudRate     = flag.Int("baud", 115200, "serial baud rate")
	scriptPath   = flag.String("script", "", "Lua script to run")
	showPreview  = flag.Bool("preview", false, "show the screen in the terminal")
	snapshotPath = flag.String("snapshot", "", "write the screen to this .png or .bmp file on exit")
	crtEffect    = flag.Bool("crt", false, "apply the CRT effect to the snapshot")
	demo         = flag.Bool("demo", false, "draw the feature demo before reading commands")
	verbose      = flag.Bool("v", false, "shorthand for -log-level=debug")
	logLevel     = flag.String("log-level", "warn", "log level: debug, info, warn or error")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vgacmd:", err)
		os.Exit(1)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func run() error {
	level, err := parseLevel(*logLevel)
	if err != nil {
		return err
	}
	if *verbose {
		level = slog.LevelDebug
	}
	vga.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	if *showPreview && stdinTTY && *serialDevice == "" && *scriptPath == "" {
		return errors.New("-preview needs -serial, -script or piped input")
	}

	var opts []vga.Option
	var p *preview.Preview
	if *showPreview {
		if p, err = preview.New(); err != nil {
			return fmt.Errorf("opening preview: %w", err)
		}
		defer p.Close()
		opts = append(opts, vga.WithOnChange(p.Draw))

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-p.Done():
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	dev := vga.New(opts...)
	if *demo {
		dev.RunDemo()
	} else if p != nil {
		p.Draw(dev.Screen())
	}

	if err := serve(ctx, dev, stdinTTY && p == nil); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if p != nil {
		select {
		case <-p.Done():
		case <-ctx.Done():
		}
	}

	if *snapshotPath != "" {
		if err := dev.SaveSnapshot(*snapshotPath, *crtEffect); err != nil {
			return err
		}
		vga.Logger().Info("snapshot written", slog.String("path", *snapshotPath))
	}
	return nil
}

func serve(ctx context.Context, dev *vga.Device, interactive bool) error {
	switch {
	case *scriptPath != "":
		return script.New(dev).RunFile(*scriptPath)

	case *serialDevice != "":
		mode := &serial.Mode{
			BaudRate: *baudRate,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
		port, err := serial.Open(*serialDevice, mode)
		if err != nil {
			return fmt.Errorf("cannot open serial port %s: %w", *serialDevice, err)
		}
		defer port.Close()
		vga.Logger().Info("serving serial port",
			slog.String("device", *serialDevice),
			slog.Int("baud", *baudRate))
		return dev.Serve(ctx, port, port)

	case interactive:
		return repl(ctx, dev)

	default:
		return dev.Serve(ctx, os.Stdin, os.Stdout)
	}
}
