// Package registry keeps the table of 2048 modes. Each mode package adds
// itself from init(), and the CLI, menu and SSH server create modes by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is a playable mode. Implementations hold the rules only; the
// terminal layer owns timing, key mapping and drawing to the terminal.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string
	Title() string

	// Reset starts a fresh run with the screen size and seed from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input. A tick without a direction is a no-op
	// for the board.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that has already been cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, unstarted instance of a mode.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. It panics on a duplicate ID, since two modes with
// one ID would share a score table.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a fresh instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
