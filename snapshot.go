package vga

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

type Format uint8

const (
	FormatPNG Format = iota
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks the snapshot format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("unsupported snapshot extension %q", filepath.Ext(path))
	}
}

// Snapshot encodes the current framebuffer. With crt set, the image is
// upscaled and rendered with scanlines first.
func (d *Device) Snapshot(w io.Writer, format Format, crt bool) error {
	var img image.Image = d.screen.Image()
	if crt {
		img = d.screen.RenderToCRT()
	}

	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported snapshot format %v", format)
	}
}

// SaveSnapshot writes a snapshot to path, choosing the format from its
// extension.
func (d *Device) SaveSnapshot(path string, crt bool) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := d.Snapshot(f, format, crt); err != nil {
		f.Close()
		return fmt.Errorf("encoding %v snapshot: %w", format, err)
	}
	return f.Close()
}
