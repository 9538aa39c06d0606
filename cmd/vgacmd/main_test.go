package main

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, c := range cases {
		actual, err := parseLevel(c.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.in, err)
			continue
		}
		if actual != c.expected {
			t.Errorf("%q: expected %v, got %v", c.in, c.expected, actual)
		}
	}

	if _, err := parseLevel("loud"); err == nil {
		t.Errorf("expected an error for an unknown level")
	}
}
