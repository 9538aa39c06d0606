package command

// HistorySize is the number of commands kept for replay.
const HistorySize = 20

// History is a ring buffer of the most recent successful commands. Once
// full, every Append overwrites the oldest entry.
type History struct {
	entries [HistorySize]Command
	cursor  int
	count   int
}

func (h *History) Append(c Command) {
	h.entries[h.cursor] = c
	h.cursor = (h.cursor + 1) % HistorySize
	if h.count < HistorySize {
		h.count++
	}
}

func (h *History) Len() int { return h.count }

// Last returns the n most recent commands, oldest first. n is clamped to
// the number of stored commands.
func (h *History) Last(n int) []Command {
	n = max(0, min(n, h.count))
	out := make([]Command, n)
	start := (h.cursor - n + HistorySize) % HistorySize
	for i := range out {
		out[i] = h.entries[(start+i)%HistorySize]
	}
	return out
}

func (h *History) Reset() {
	*h = History{}
}
