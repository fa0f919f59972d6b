package t2048

import "github.com/vovakirdan/tui-2048/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Level   int // Current level (1-indexed), 0 outside the campaign
	Target  int // Current target tile value, 0 for none
	Score   int
	Moves   int
	Board   board.Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    g.mode,
		Level:   level,
		Target:  g.currentTarget,
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.board,
		MaxTile: board.MaxTile(g.board),
		State:   state,
	}
}
