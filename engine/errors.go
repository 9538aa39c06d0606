package engine

import (
	"errors"

	"github.com/vgacore/vga/screen"
)

// Error is a validation or render status reported by the engine.
type Error uint8

const (
	ErrInvalidParam Error = iota + 1
	ErrOutOfBounds
	ErrInvalidColor
	ErrInvalidThickness
	ErrInvalidSize
	ErrInvalidFilled
	ErrInvalidFontName
	ErrInvalidFontSize
	ErrInvalidFontStyle
	ErrTextTooLong

	ErrVGA
	ErrVGAInvalidCoordinate
	ErrVGAInvalidParameter
)

var errorText = map[Error]string{
	ErrInvalidParam:         "ongeldig parameter",
	ErrOutOfBounds:          "coördinaten buiten scherm",
	ErrInvalidColor:         "ongeldig kleur",
	ErrInvalidThickness:     "ongeldig dikte",
	ErrInvalidSize:          "ongeldige afmetingen",
	ErrInvalidFilled:        "ongeldig gevuld veld",
	ErrInvalidFontName:      "ongeldige fontnaam",
	ErrInvalidFontSize:      "ongeldige fontgrootte",
	ErrInvalidFontStyle:     "ongeldig fontstijl",
	ErrTextTooLong:          "tekst te lang",
	ErrVGA:                  "VGA fout",
	ErrVGAInvalidCoordinate: "VGA ongeldig coördinaat",
	ErrVGAInvalidParameter:  "VGA ongeldig parameter",
}

func (e Error) Error() string {
	if s, ok := errorText[e]; ok {
		return s
	}
	return "onbekende fout"
}

// Driver reports whether the error was raised by the renderer rather than
// by validation.
func (e Error) Driver() bool {
	return e >= ErrVGA
}

// driverError translates a renderer status into the engine's error space.
func driverError(err error) error {
	if err == nil {
		return nil
	}
	var se screen.Error
	if !errors.As(err, &se) {
		return ErrVGA
	}
	switch se {
	case screen.ErrInvalidCoordinate:
		return ErrVGAInvalidCoordinate
	case screen.ErrInvalidParameter:
		return ErrVGAInvalidParameter
	default:
		return ErrVGA
	}
}
