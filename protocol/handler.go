package protocol

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vgacore/vga/command"
	"github.com/vgacore/vga/internal/logger"
)

type Executor interface {
	Execute(c command.Command) error
}

// Handler answers protocol lines by parsing and executing them.
type Handler struct {
	Executor Executor
}

func NewHandler(e Executor) *Handler {
	return &Handler{Executor: e}
}

// Handle processes one line to completion and returns the response.
func (h *Handler) Handle(line string) string {
	return Describe(h.handle(line))
}

func (h *Handler) handle(line string) error {
	c, err := Parse(line)
	if err != nil {
		return err
	}
	return h.Executor.Execute(c)
}

// scanLines splits on either line terminator and drops empty lines, so
// CRLF input yields one line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && (data[start] == '\r' || data[start] == '\n') {
		start++
	}
	if i := bytes.IndexAny(data[start:], "\r\n"); i >= 0 {
		return start + i + 1, data[start : start+i], nil
	}
	if atEOF {
		if start < len(data) {
			return len(data), data[start:], nil
		}
		return len(data), nil, nil
	}
	return start, nil, nil
}

// Serve reads lines from r and writes one response line per command to w.
// Command errors are reported and never stop the loop. Serve returns nil at
// end of input, the context error once ctx is done, or the first read or
// write error.
//
// Serve does not own r. A read that is blocked when ctx is done keeps its
// goroutine alive until r returns; close r to release it.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	type result struct {
		line string
		err  error
	}
	lines := make(chan result)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Split(scanLines)
		for sc.Scan() {
			select {
			case lines <- result{line: sc.Text()}:
			case <-done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case lines <- result{err: err}:
			case <-done:
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return nil
			}
			if res.err != nil {
				logger.Logger().Warn("read failed", slog.Any("error", res.err))
				return fmt.Errorf("reading commands: %w", res.err)
			}
			resp := h.Handle(res.line)
			if _, err := fmt.Fprintf(w, "%s\r\n", resp); err != nil {
				logger.Logger().Warn("write failed", slog.Any("error", err))
				return fmt.Errorf("writing response: %w", err)
			}
		}
	}
}
