package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeHandler struct {
	lines []string
}

func (f *fakeHandler) Handle(line string) string {
	f.lines = append(f.lines, line)
	if strings.HasPrefix(line, "fout") {
		return "FRONT ERROR: onbekend commando"
	}
	return "OK"
}

func TestExec(t *testing.T) {
	h := &fakeHandler{}
	r := New(h)

	src := `
for i = 0, 2 do
	local ok, msg = exec("lijn," .. i .. ",0,10,10,rood,1")
	assert(ok, msg)
end
local ok, msg = exec("fout")
assert(not ok)
assert(msg == "FRONT ERROR: onbekend commando")
assert(wacht(5))
log("klaar")
`
	if err := r.RunString(src); err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"lijn,0,0,10,10,rood,1",
		"lijn,1,0,10,10,rood,1",
		"lijn,2,0,10,10,rood,1",
		"fout",
		"wacht,5",
	}
	if len(h.lines) != len(expected) {
		t.Fatalf("expected %d lines, got %v", len(expected), h.lines)
	}
	for i := range expected {
		if h.lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], h.lines[i])
		}
	}
}

func TestRunFile(t *testing.T) {
	h := &fakeHandler{}
	path := filepath.Join(t.TempDir(), "demo.lua")
	if err := os.WriteFile(path, []byte(`exec("clearscherm,wit")`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := New(h).RunFile(path); err != nil {
		t.Fatal(err)
	}
	if len(h.lines) != 1 || h.lines[0] != "clearscherm,wit" {
		t.Errorf("unexpected lines %v", h.lines)
	}

	if err := New(h).RunFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
	if err := New(h).RunString(`exec()`); err == nil {
		t.Errorf("expected an error for a missing argument")
	}
}
