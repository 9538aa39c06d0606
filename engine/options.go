package engine

import (
	"time"
)

type Option func(*Engine)

// WithDelay replaces the function used to block on wait commands.
func WithDelay(delay func(time.Duration)) Option {
	return func(e *Engine) {
		if delay != nil {
			e.delay = delay
		}
	}
}

// WithRepeatLogging controls whether successful repeat commands are
// recorded in the history themselves. Replays always skip recorded repeats.
func WithRepeatLogging(enabled bool) Option {
	return func(e *Engine) {
		e.logRepeats = enabled
	}
}
