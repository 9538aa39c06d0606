// Package preview shows the framebuffer in a terminal using tcell, two
// pixel rows per character cell.
package preview

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vgacore/vga/screen"
)

const halfBlock = '▀'

// Preview mirrors a screen.Screen onto a terminal.
type Preview struct {
	term tcell.Screen

	done     chan struct{}
	stopOnce sync.Once
}

// New opens the controlling terminal.
func New() (*Preview, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(term)
}

// NewWithScreen initializes term and starts polling it for input. Escape,
// Ctrl-C or q close Done.
func NewWithScreen(term tcell.Screen) (*Preview, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.HideCursor()
	term.Clear()

	p := &Preview{
		term: term,
		done: make(chan struct{}),
	}
	go p.poll()
	return p, nil
}

func (p *Preview) poll() {
	for {
		ev := p.term.PollEvent()
		switch ev := ev.(type) {
		case nil:
			p.stop()
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				p.stop()
			}
		case *tcell.EventResize:
			p.term.Sync()
		}
	}
}

func (p *Preview) stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// Done is closed once the user asked to quit or the terminal went away.
func (p *Preview) Done() <-chan struct{} { return p.done }

// Draw renders s scaled down to fit the terminal and shows it.
func (p *Preview) Draw(s *screen.Screen) {
	cols, rows := p.term.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	// smallest integer step that fits both axes
	step := max((screen.Width+cols-1)/cols, (screen.Height+2*rows-1)/(2*rows), 1)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x, top, bottom := cx*step, 2*cy*step, (2*cy+1)*step
			if x >= screen.Width || top >= screen.Height {
				p.term.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.
				Foreground(termColor(s.At(x, top))).
				Background(termColor(s.At(x, bottom)))
			p.term.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	p.term.Show()
}

func termColor(c screen.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Close restores the terminal.
func (p *Preview) Close() {
	p.term.Fini()
	p.stop()
}
