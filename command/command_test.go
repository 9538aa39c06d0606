package command

import (
	"testing"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		cmd      Command
		expected string
	}{
		{Line{}, "lijn"},
		{Rectangle{}, "rechthoek"},
		{Text{}, "tekst"},
		{Bitmap{}, "bitmap"},
		{ClearScreen{}, "clearscherm"},
		{Wait{}, "wacht"},
		{Repeat{}, "herhaal"},
		{Circle{}, "cirkel"},
		{Figure{}, "figuur"},
	}
	for _, c := range cases {
		if actual := c.cmd.Kind().String(); actual != c.expected {
			t.Errorf("expected %q, got %q", c.expected, actual)
		}
	}
	if actual := Kind(42).String(); actual != "Kind(42)" {
		t.Errorf("unexpected name for unknown kind: %q", actual)
	}
}

func TestHistoryLast(t *testing.T) {
	var h History
	for i := 0; i < 3; i++ {
		h.Append(Wait{Milliseconds: i})
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}

	last := h.Last(2)
	if len(last) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(last))
	}
	for i, expected := range []int{1, 2} {
		if w := last[i].(Wait); w.Milliseconds != expected {
			t.Errorf("entry %d: expected %d, got %d", i, expected, w.Milliseconds)
		}
	}

	if n := len(h.Last(10)); n != 3 {
		t.Errorf("expected clamp to 3, got %d", n)
	}
	if n := len(h.Last(-1)); n != 0 {
		t.Errorf("expected no entries, got %d", n)
	}
}

func TestHistoryWraps(t *testing.T) {
	var h History
	for i := 0; i < HistorySize+7; i++ {
		h.Append(Wait{Milliseconds: i})
	}
	if h.Len() != HistorySize {
		t.Fatalf("expected %d entries, got %d", HistorySize, h.Len())
	}

	all := h.Last(HistorySize)
	for i, c := range all {
		if expected, actual := i+7, c.(Wait).Milliseconds; actual != expected {
			t.Errorf("entry %d: expected %d, got %d", i, expected, actual)
		}
	}

	h.Reset()
	if h.Len() != 0 || len(h.Last(5)) != 0 {
		t.Errorf("reset left entries behind")
	}
}
