// Package command defines the drawing commands understood by the engine and
// the bounded history used to replay them.
package command

import (
	"fmt"
	"image"
)

type Kind uint8

const (
	KindLine Kind = iota
	KindRectangle
	KindText
	KindBitmap
	KindClearScreen
	KindWait
	KindRepeat
	KindCircle
	KindFigure
)

// String returns the protocol keyword of the kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "lijn"
	case KindRectangle:
		return "rechthoek"
	case KindText:
		return "tekst"
	case KindBitmap:
		return "bitmap"
	case KindClearScreen:
		return "clearscherm"
	case KindWait:
		return "wacht"
	case KindRepeat:
		return "herhaal"
	case KindCircle:
		return "cirkel"
	case KindFigure:
		return "figuur"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Command is one of the value types in this package.
type Command interface {
	Kind() Kind
	isCommand()
}

type Line struct {
	X1, Y1, X2, Y2 int
	Color          string
	Thickness      int
}

type Rectangle struct {
	X, Y, Width, Height int
	Color               string
	Filled              int
}

type Text struct {
	X, Y  int
	Color string
	Text  string
	Font  string
	Size  int
	Style string
}

type Bitmap struct {
	ID, X, Y int
}

type ClearScreen struct {
	Color string
}

type Wait struct {
	Milliseconds int
}

// Repeat replays the last Count history entries, Times times over.
type Repeat struct {
	Count, Times int
}

type Circle struct {
	X, Y, Radius int
	Color        string
}

// Figure is a closed polygon through five vertices.
type Figure struct {
	Points [5]image.Point
	Color  string
}

func (Line) Kind() Kind        { return KindLine }
func (Rectangle) Kind() Kind   { return KindRectangle }
func (Text) Kind() Kind        { return KindText }
func (Bitmap) Kind() Kind      { return KindBitmap }
func (ClearScreen) Kind() Kind { return KindClearScreen }
func (Wait) Kind() Kind        { return KindWait }
func (Repeat) Kind() Kind      { return KindRepeat }
func (Circle) Kind() Kind      { return KindCircle }
func (Figure) Kind() Kind      { return KindFigure }

func (Line) isCommand()        {}
func (Rectangle) isCommand()   {}
func (Text) isCommand()        {}
func (Bitmap) isCommand()      {}
func (ClearScreen) isCommand() {}
func (Wait) isCommand()        {}
func (Repeat) isCommand()      {}
func (Circle) isCommand()      {}
func (Figure) isCommand()      {}
