// Package script runs Lua programs that drive the renderer. Scripts get a
// global exec(line) that handles one protocol line and returns ok and the
// response text, plus wacht(ms) and log(msg) helpers.
package script

import (
	"fmt"
	"log/slog"

	lua "github.com/yuin/gopher-lua"

	"github.com/vgacore/vga/internal/logger"
)

// Handler answers a single protocol line.
type Handler interface {
	Handle(line string) string
}

type Runner struct {
	handler Handler
}

func New(h Handler) *Runner {
	return &Runner{handler: h}
}

func (r *Runner) newState() *lua.LState {
	L := lua.NewState()
	L.SetGlobal("exec", L.NewFunction(r.exec))
	L.SetGlobal("wacht", L.NewFunction(r.wait))
	L.SetGlobal("log", L.NewFunction(luaLog))
	return L
}

// RunFile executes the Lua file at path.
func (r *Runner) RunFile(path string) error {
	L := r.newState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

// RunString executes Lua source.
func (r *Runner) RunString(src string) error {
	L := r.newState()
	defer L.Close()
	return L.DoString(src)
}

func (r *Runner) exec(L *lua.LState) int {
	line := L.CheckString(1)
	resp := r.handler.Handle(line)
	L.Push(lua.LBool(resp == "OK"))
	L.Push(lua.LString(resp))
	return 2
}

func (r *Runner) wait(L *lua.LState) int {
	ms := L.CheckInt(1)
	resp := r.handler.Handle(fmt.Sprintf("wacht,%d", ms))
	L.Push(lua.LBool(resp == "OK"))
	return 1
}

func luaLog(L *lua.LState) int {
	logger.Logger().Info("script", slog.String("msg", L.CheckString(1)))
	return 0
}
