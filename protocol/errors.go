package protocol

import (
	"errors"

	"github.com/vgacore/vga/engine"
)

// Error is a status reported while parsing a command line.
type Error uint8

const (
	ErrEmptyInput Error = iota + 1
	ErrParse
	ErrUnknownCommand
)

func (e Error) Error() string {
	switch e {
	case ErrEmptyInput:
		return "lege input"
	case ErrParse:
		return "parser fout"
	case ErrUnknownCommand:
		return "onbekend commando"
	}
	return "onbekende fout"
}

// Describe renders err as a response line naming the layer that produced
// it. A nil error is acknowledged with OK.
func Describe(err error) string {
	if err == nil {
		return "OK"
	}

	var pe Error
	if errors.As(err, &pe) {
		return "FRONT ERROR: " + pe.Error()
	}
	var ee engine.Error
	if errors.As(err, &ee) {
		if ee.Driver() {
			return "VGA ERROR: " + ee.Error()
		}
		return "LOGIC ERROR: " + ee.Error()
	}
	return "ERROR: " + err.Error()
}
