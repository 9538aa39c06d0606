package protocol

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/vgacore/vga/command"
	"github.com/vgacore/vga/engine"
	"github.com/vgacore/vga/screen"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line     string
		expected command.Command
	}{
		{"lijn,1,2,3,4,rood,2", command.Line{X1: 1, Y1: 2, X2: 3, Y2: 4, Color: "rood", Thickness: 2}},
		{"LIJN, 1, 2, 3, 4, rood, 2\r\n", command.Line{X1: 1, Y1: 2, X2: 3, Y2: 4, Color: "rood", Thickness: 2}},
		{"rechthoek,10,10,30,20,zwart,1", command.Rectangle{X: 10, Y: 10, Width: 30, Height: 20, Color: "zwart", Filled: 1}},
		{"tekst,5,6,wit,hallo wereld,arial,2,vet", command.Text{X: 5, Y: 6, Color: "wit", Text: "hallo wereld", Font: "arial", Size: 2, Style: "vet"}},
		{"tekst, 5, 6, wit,  twee spaties  , arial, 1, normaal", command.Text{X: 5, Y: 6, Color: "wit", Text: "  twee spaties  ", Font: "arial", Size: 1, Style: "normaal"}},
		{"bitmap,3,100,50", command.Bitmap{ID: 3, X: 100, Y: 50}},
		{"Clearscherm,blauw", command.ClearScreen{Color: "blauw"}},
		{"wacht,250", command.Wait{Milliseconds: 250}},
		{"herhaal,3,2", command.Repeat{Count: 3, Times: 2}},
		{"cirkel,120,160,79,groen", command.Circle{X: 120, Y: 160, Radius: 79, Color: "groen"}},
		{"figuur,1,2,3,4,5,6,7,8,9,10,geel", command.Figure{
			Points: [5]image.Point{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
			Color:  "geel",
		}},
	}

	for _, c := range cases {
		actual, err := Parse(c.line)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.line, err)
			continue
		}
		if actual != c.expected {
			t.Errorf("%q: expected %+v, got %+v", c.line, c.expected, actual)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		line     string
		expected error
	}{
		{"", ErrEmptyInput},
		{"  \r\n", ErrEmptyInput},
		{"teken,1,2", ErrUnknownCommand},
		{"lijn,1,2,3,4,rood", ErrParse},
		{"lijn,1,2,3,4,rood,2,9", ErrParse},
		{"lijn,a,2,3,4,rood,2", ErrParse},
		{"clearscherm,", ErrParse},
		{"tekst,5,6,wit,,arial,1,normaal", ErrParse},
		{"herhaal,1", ErrParse},
		{"figuur,1,2,3,4,5,6,7,8,9,geel", ErrParse},
	}
	for _, c := range cases {
		if _, err := Parse(c.line); err != c.expected {
			t.Errorf("%q: expected %v, got %v", c.line, c.expected, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{nil, "OK"},
		{ErrUnknownCommand, "FRONT ERROR: onbekend commando"},
		{engine.ErrInvalidColor, "LOGIC ERROR: ongeldig kleur"},
		{engine.ErrVGAInvalidParameter, "VGA ERROR: VGA ongeldig parameter"},
		{errors.New("kapot"), "ERROR: kapot"},
	}
	for _, c := range cases {
		if actual := Describe(c.err); actual != c.expected {
			t.Errorf("expected %q, got %q", c.expected, actual)
		}
	}
}

func TestHandle(t *testing.T) {
	h := NewHandler(engine.New(screen.New(), nil))
	cases := []struct {
		line     string
		expected string
	}{
		{"clearscherm,wit", "OK"},
		{"rechthoek,10,10,30,20,zwart,1", "OK"},
		{"cirkel,120,160,79,groen", "OK"},
		{"figuur,320,0,10,10,20,20,30,30,40,40,rood", "LOGIC ERROR: coördinaten buiten scherm"},
		{"lijn,0,0,10,10,paars,1", "LOGIC ERROR: ongeldig kleur"},
		{"", "FRONT ERROR: lege input"},
		{"herhaal,3,1", "OK"},
		{"herhaal,4,1", "LOGIC ERROR: ongeldig parameter"},
		{"cirkel,4611686018427387904,4611686018427387904,4611686018427387904,rood", "LOGIC ERROR: coördinaten buiten scherm"},
		{"rechthoek,10,10,9223372036854775807,20,wit,0", "LOGIC ERROR: coördinaten buiten scherm"},
	}
	for _, c := range cases {
		if actual := h.Handle(c.line); actual != c.expected {
			t.Errorf("%q: expected %q, got %q", c.line, c.expected, actual)
		}
	}
}

func TestServe(t *testing.T) {
	s := screen.New()
	h := NewHandler(engine.New(s, nil))

	in := strings.NewReader("clearscherm,rood\r\nonzin\n\nlijn,0,0,10,0,wit,1\rbitmap,9,0,0")
	var out bytes.Buffer
	if err := h.Serve(context.Background(), in, &out); err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"OK",
		"FRONT ERROR: onbekend commando",
		"OK",
		"LOGIC ERROR: ongeldig parameter",
	}
	actual := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	if len(actual) != len(expected) {
		t.Fatalf("expected %d responses, got %q", len(expected), actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("response %d: expected %q, got %q", i, expected[i], actual[i])
		}
	}
	if s.At(5, 0) != screen.ColorWhite || s.At(5, 5) != screen.ColorRed {
		t.Errorf("commands were not drawn")
	}
}

func TestServeStopsOnContext(t *testing.T) {
	h := NewHandler(engine.New(screen.New(), nil))
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.Serve(ctx, r, io.Discard); !errors.Is(err, context.Canceled) {
		t.Errorf("expected %v, got %v", context.Canceled, err)
	}

	// the reader goroutine is still blocked; closing r releases it
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("clearscherm,wit\n")); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected %v, got %v", io.ErrClosedPipe, err)
	}
}
