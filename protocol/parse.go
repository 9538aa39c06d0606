// Package protocol implements the comma separated text protocol used to
// send drawing commands to the renderer.
package protocol

import (
	"image"
	"strconv"
	"strings"

	"github.com/vgacore/vga/command"
)

// layout describes the fields following a keyword. 'i' is an integer
// field, 's' a name field and 't' free text, kept as written.
type layout struct {
	fields string
	build  func(f fields) command.Command
}

type fields struct {
	ints []int
	strs []string
}

var layouts = map[string]layout{
	"lijn": {"iiiisi", func(f fields) command.Command {
		return command.Line{X1: f.ints[0], Y1: f.ints[1], X2: f.ints[2], Y2: f.ints[3], Color: f.strs[0], Thickness: f.ints[4]}
	}},
	"rechthoek": {"iiiisi", func(f fields) command.Command {
		return command.Rectangle{X: f.ints[0], Y: f.ints[1], Width: f.ints[2], Height: f.ints[3], Color: f.strs[0], Filled: f.ints[4]}
	}},
	"tekst": {"iistsis", func(f fields) command.Command {
		return command.Text{X: f.ints[0], Y: f.ints[1], Color: f.strs[0], Text: f.strs[1], Font: f.strs[2], Size: f.ints[2], Style: f.strs[3]}
	}},
	"bitmap": {"iii", func(f fields) command.Command {
		return command.Bitmap{ID: f.ints[0], X: f.ints[1], Y: f.ints[2]}
	}},
	"clearscherm": {"s", func(f fields) command.Command {
		return command.ClearScreen{Color: f.strs[0]}
	}},
	"wacht": {"i", func(f fields) command.Command {
		return command.Wait{Milliseconds: f.ints[0]}
	}},
	"herhaal": {"ii", func(f fields) command.Command {
		return command.Repeat{Count: f.ints[0], Times: f.ints[1]}
	}},
	"cirkel": {"iiis", func(f fields) command.Command {
		return command.Circle{X: f.ints[0], Y: f.ints[1], Radius: f.ints[2], Color: f.strs[0]}
	}},
	"figuur": {"iiiiiiiiiis", func(f fields) command.Command {
		var p [5]image.Point
		for i := range p {
			p[i] = image.Pt(f.ints[2*i], f.ints[2*i+1])
		}
		return command.Figure{Points: p, Color: f.strs[0]}
	}},
}

// Parse turns one protocol line into a command. Keywords are matched case
// insensitively. Numbers and names are trimmed of surrounding white space;
// the text of a tekst command is taken as written.
func Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyInput
	}

	parts := strings.Split(line, ",")
	keyword := strings.ToLower(strings.TrimSpace(parts[0]))
	l, ok := layouts[keyword]
	if !ok {
		return nil, ErrUnknownCommand
	}

	args := parts[1:]
	if len(args) != len(l.fields) {
		return nil, ErrParse
	}

	var f fields
	for i, kind := range l.fields {
		arg := args[i]
		if kind != 't' {
			arg = strings.TrimSpace(arg)
		}
		switch kind {
		case 'i':
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, ErrParse
			}
			f.ints = append(f.ints, v)
		case 's', 't':
			if arg == "" {
				return nil, ErrParse
			}
			f.strs = append(f.strs, arg)
		}
	}
	return l.build(f), nil
}
