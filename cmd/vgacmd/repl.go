package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vgacore/vga"
	"github.com/vgacore/vga/style"
)

const helpText = `commando's:
  lijn,x,y,x2,y2,kleur,dikte
  rechthoek,x,y,breedte,hoogte,kleur,gevuld
  tekst,x,y,kleur,tekst,font,grootte,stijl
  bitmap,nr,x,y
  clearscherm,kleur
  wacht,ms
  herhaal,aantal,hoevaak
  cirkel,x,y,radius,kleur
  figuur,x1,y1,x2,y2,x3,y3,x4,y4,x5,y5,kleur
`

// repl reads commands from the terminal with line editing until EOF or
// "exit".
func repl(ctx context.Context, dev *vga.Device) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(rw, "vga> ")

	for ctx.Err() == nil {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading terminal: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprint(t, helpText)
			fmt.Fprintf(t, "kleuren: %s\n", strings.Join(style.Colors(), ", "))
			continue
		}
		fmt.Fprintln(t, dev.Handle(line))
	}
	return ctx.Err()
}
