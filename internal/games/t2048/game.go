// Package t2048 implements the 2048 puzzle session: it owns the board and
// running score, spawns tiles after real moves and detects game over.
// Classic, campaign and endless modes share the same board rules.
package t2048

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registered game IDs.
const (
	IDClassic  = "2048"
	IDCampaign = "2048_campaign"
	IDEndless  = "2048_endless"
)

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultT2048Config()
)

// Configure sets the configuration used by games created through the registry.
func Configure(cfg config.T2048Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Settings returns the configuration used by registry-created games.
func Settings() config.T2048Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game implements the 2048 puzzle game.
type Game struct {
	mode       Mode
	cfg        config.T2048Config
	levels     []Level
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	board         board.Board
	score         int
	moves         int
	lastGain      int // Score of the most recent move
	levelIndex    int // Current level (0-indexed)
	startLevel    int // Requested start level (1-indexed), 0 = first
	currentTarget int // Current tile target, 0 = none

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// NewWithConfig creates a game in the given mode with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.T2048Config) *Game {
	return &Game{
		mode:       mode,
		cfg:        cfg,
		levels:     LevelsFrom(cfg.Campaign),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// New creates a classic 2048 game.
func New() *Game {
	return NewWithConfig(ModeClassic, Settings())
}

// NewCampaign creates a campaign mode 2048 game.
func NewCampaign() *Game {
	return NewWithConfig(ModeCampaign, Settings())
}

// NewEndless creates an endless mode 2048 game.
func NewEndless() *Game {
	return NewWithConfig(ModeEndless, Settings())
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDCampaign, func() registry.Game {
		return NewCampaign()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return IDCampaign
	case ModeEndless:
		return IDEndless
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "2048 (Campaign)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetStartLevel selects the campaign level (1-indexed) the next Reset starts at.
// Out-of-range values start from the first level.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.score = 0
	g.moves = 0
	g.lastGain = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.board = board.Init()

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= len(g.levels) {
		g.levelIndex = g.startLevel - 1
	}
	g.loadLevel()

	for range g.initialTiles() {
		g.spawnTile()
	}

	g.checkScreenSize()
}

// initialTiles returns how many tiles the mode starts with.
func (g *Game) initialTiles() int {
	switch g.mode {
	case ModeCampaign:
		return g.cfg.Campaign.InitialTiles
	case ModeEndless:
		return g.cfg.Endless.InitialTiles
	default:
		return g.cfg.Board.InitialTiles
	}
}

// loadLevel sets up the current level target.
func (g *Game) loadLevel() {
	g.currentTarget = 0
	if g.mode != ModeCampaign || len(g.levels) == 0 {
		return
	}
	g.levelIndex = core.Clamp(g.levelIndex, 0, len(g.levels)-1)
	g.currentTarget = g.levels[g.levelIndex].Target
}

// fourProbability returns the current odds of spawning a 4.
func (g *Game) fourProbability() float64 {
	switch g.mode {
	case ModeCampaign:
		if len(g.levels) > 0 {
			return g.levels[g.levelIndex].FourProbability
		}
	case ModeEndless:
		return g.difficulty.FourProbability(g.cfg.Board.FourProbability, g.score, g.moves)
	}
	return g.cfg.Board.FourProbability
}

// spawnTile places a new tile in a random empty cell.
func (g *Game) spawnTile() {
	g.board, _, _ = board.SpawnTileOdds(g.board, g.rng, g.fourProbability())
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

var actionDirections = map[core.Action]board.Direction{
	core.ActionUp:    board.Up,
	core.ActionDown:  board.Down,
	core.ActionLeft:  board.Left,
	core.ActionRight: board.Right,
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		// Auto-advance after 2 seconds, or on confirm
		if in.Has(core.ActionConfirm) || g.levelClearTicks >= 2*g.tickRate {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	// Moves are applied in the order the keys arrived
	var moved bool
	for _, a := range in.Directions() {
		if g.Move(actionDirections[a]) {
			moved = true
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// Move slides the board in the given direction. A move that leaves the
// board unchanged is a no-op: no tile spawns and the move is not counted.
// Returns whether the board changed.
func (g *Game) Move(dir board.Direction) bool {
	if g.gameOver || g.won || g.levelCleared {
		return false
	}

	res := board.Slide(g.board, dir)
	if !board.Changed(g.board, res.Board) {
		return false
	}

	g.board = res.Board
	g.score += res.Score
	g.lastGain = res.Score
	g.moves++
	g.spawnTile()

	if g.mode == ModeCampaign && g.currentTarget > 0 && board.MaxTile(g.board) >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
		return true
	}

	if IsGameOver(g.board) {
		g.gameOver = true
	}
	return true
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()

	// The board may already hold the next target
	if board.MaxTile(g.board) >= g.currentTarget {
		g.levelCleared = true
		return
	}
	if IsGameOver(g.board) {
		g.gameOver = true
	}
}

// Board returns the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  board.MaxTile(g.board),
		Moves:    g.moves,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
