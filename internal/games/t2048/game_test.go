package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

func newTestGame(t *testing.T, mode Mode, mutate func(*config.T2048Config)) *Game {
	t.Helper()
	cfg := config.DefaultT2048Config()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	g := NewWithConfig(mode, cfg)
	g.Reset(testRuntime)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameOverBoards(t *testing.T) {
	tests := []struct {
		name     string
		board    board.Board
		gameOver bool
	}{
		{
			name: "full board without merges",
			board: board.Board{
				{4, 2, 4, 8},
				{2, 64, 8, 4},
				{8, 16, 32, 64},
				{4, 2, 4, 8},
			},
			gameOver: true,
		},
		{
			name: "horizontal pair in the middle",
			board: board.Board{
				{4, 2, 4, 8},
				{2, 8, 8, 4},
				{8, 16, 32, 64},
				{4, 2, 4, 8},
			},
		},
		{
			name: "horizontal pair on the left",
			board: board.Board{
				{4, 64, 4, 8},
				{2, 2, 16, 4},
				{8, 16, 32, 64},
				{4, 2, 4, 8},
			},
		},
		{
			name: "vertical pair",
			board: board.Board{
				{4, 2, 4, 8},
				{2, 8, 64, 4},
				{4, 16, 32, 64},
				{4, 2, 4, 8},
			},
		},
		{
			name: "one empty cell",
			board: board.Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name:  "empty board",
			board: board.Init(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGameOver(tt.board); got != tt.gameOver {
				t.Errorf("IsGameOver = %v, want %v", got, tt.gameOver)
			}
			if got := CanMove(tt.board); got == tt.gameOver {
				t.Errorf("CanMove = %v, want %v", got, !tt.gameOver)
			}
			// A finished game has no direction left to play
			if n := len(ValidMoves(tt.board)); tt.gameOver && n != 0 {
				t.Errorf("ValidMoves on a finished board = %d directions", n)
			}
		})
	}
}

func TestValidMoves(t *testing.T) {
	b := board.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	got := ValidMoves(b)
	want := []board.Direction{board.Down, board.Right}
	if len(got) != len(want) {
		t.Fatalf("ValidMoves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ValidMoves[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResetInitialTiles(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{ModeClassic, 1},
		{ModeCampaign, 2},
		{ModeEndless, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			g := newTestGame(t, tt.mode, nil)
			if n := board.Count(g.Board()); n != tt.want {
				t.Errorf("initial tiles = %d, want %d", n, tt.want)
			}
			if s := g.State(); s.Score != 0 || s.Moves != 0 || s.GameOver {
				t.Errorf("fresh state = %+v", s)
			}
			for _, c := range board.EmptyCells(board.Init()) {
				if v := g.Board()[c.Row][c.Col]; v != 0 && v != 2 && v != 4 {
					t.Fatalf("initial tile %d at %+v", v, c)
				}
			}
		})
	}
}

func TestDeterministicSpawn(t *testing.T) {
	play := func() []board.Board {
		g := newTestGame(t, ModeClassic, nil)
		boards := []board.Board{g.Board()}
		for _, d := range []board.Direction{board.Left, board.Up, board.Right, board.Down, board.Left} {
			g.Move(d)
			boards = append(boards, g.Board())
		}
		return boards
	}

	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("boards diverged at step %d:\n%v\nvs\n%v", i, a[i], b[i])
		}
	}
}

func TestMoveScoresAndSpawns(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.board = board.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 4, 4},
		{0, 0, 0, 0},
	}

	if !g.Move(board.Left) {
		t.Fatal("Move(Left) reported no change")
	}

	s := g.State()
	if s.Score != 12 {
		t.Errorf("score = %d, want 12", s.Score)
	}
	if s.Moves != 1 {
		t.Errorf("moves = %d, want 1", s.Moves)
	}
	// 4, 2, 8 plus one spawned tile
	if n := board.Count(g.Board()); n != 4 {
		t.Errorf("tile count = %d, want 4\n%v", n, g.Board())
	}
	if g.lastGain != 12 {
		t.Errorf("lastGain = %d, want 12", g.lastGain)
	}
}

func TestNullMoveDoesNotSpawn(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.board = board.Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := g.Board()

	if g.Move(board.Left) {
		t.Error("Move(Left) on left-aligned tiles reported a change")
	}
	if g.Board() != before {
		t.Errorf("null move changed the board:\n%v", g.Board())
	}
	if s := g.State(); s.Moves != 0 || s.Score != 0 {
		t.Errorf("null move counted: %+v", s)
	}
}

func TestMoveDetectsGameOver(t *testing.T) {
	g := newTestGame(t, ModeClassic, func(c *config.T2048Config) {
		c.Board.FourProbability = 0
	})
	g.board = board.Board{
		{0, 8, 16, 32},
		{2, 4, 8, 16},
		{8, 16, 32, 64},
		{2, 4, 8, 16},
	}

	res := g.Step(frame(core.ActionLeft))
	if !res.Moved {
		t.Fatal("Step did not apply the move")
	}
	if !res.State.GameOver {
		t.Errorf("expected game over after filling the last cell:\n%v", g.Board())
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot state = %s, want game_over", g.Snapshot().State)
	}

	// Further input is ignored
	before := g.Board()
	g.Step(frame(core.ActionRight))
	if g.Board() != before {
		t.Error("moves applied after game over")
	}
}

func TestStepAppliesEveryQueuedMove(t *testing.T) {
	newGame := func() *Game {
		g := newTestGame(t, ModeClassic, func(c *config.T2048Config) {
			c.Board.FourProbability = 0
		})
		g.board = board.Board{
			{2, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}
		return g
	}

	// Left is a null move here, Down is not
	g := newGame()
	res := g.Step(frame(core.ActionLeft, core.ActionDown))
	if g.moves != 1 || !res.Moved {
		t.Errorf("moves = %d moved = %v, want 1 true", g.moves, res.Moved)
	}

	// Two keys within one tick both land
	g = newGame()
	g.Step(frame(core.ActionRight, core.ActionDown))
	if g.moves != 2 {
		t.Errorf("moves = %d, want 2", g.moves)
	}
	if g.board[3][3] == 0 {
		t.Errorf("Right then Down should leave a tile in the bottom-right corner:\n%v", g.Board())
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.board = board.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	g.Step(frame(core.ActionRight))
	if g.moves != 0 {
		t.Error("move applied while paused")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRight))
	if g.moves != 1 {
		t.Errorf("moves after resume = %d, want 1", g.moves)
	}
}

func TestCampaignProgression(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.board = board.Board{
		{64, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g.Step(frame(core.ActionLeft))
	if !g.levelCleared {
		t.Fatal("reaching the target should clear the level")
	}
	if g.Snapshot().State != StateLevelCleared {
		t.Errorf("Snapshot state = %s", g.Snapshot().State)
	}

	g.Step(frame(core.ActionConfirm))
	if g.levelIndex != 1 || g.currentTarget != 256 {
		t.Errorf("after confirm: level %d target %d, want level 2 target 256", g.levelIndex+1, g.currentTarget)
	}
	if g.score != 128 {
		t.Errorf("score should carry over, got %d", g.score)
	}
}

func TestCampaignAutoAdvance(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.board = board.Board{
		{64, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g.Move(board.Left)

	for range 2*testRuntime.TickRate - 1 {
		g.Step(core.NewInputFrame())
	}
	if !g.levelCleared {
		t.Fatal("advanced too early")
	}
	g.Step(core.NewInputFrame())
	if g.levelCleared || g.levelIndex != 1 {
		t.Errorf("expected level 2 after two seconds, got level %d (cleared=%v)", g.levelIndex+1, g.levelCleared)
	}
}

func TestCampaignWin(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.T2048Config) {
		c.Campaign.Levels = []config.LevelConfig{{Name: "Only", Target: 8, FourProbability: 0}}
	})
	g.board = board.Board{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g.Move(board.Left)
	g.Step(frame(core.ActionConfirm))

	if !g.won || !g.State().GameOver {
		t.Error("finishing the last level should win the campaign")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot state = %s, want win", g.Snapshot().State)
	}
}

func TestCampaignStartLevel(t *testing.T) {
	g := NewWithConfig(ModeCampaign, config.DefaultT2048Config())
	g.SetStartLevel(3)
	g.Reset(testRuntime)

	snap := g.Snapshot()
	if snap.Level != 3 || snap.Target != 512 {
		t.Errorf("start level 3: level %d target %d", snap.Level, snap.Target)
	}

	g.SetStartLevel(99)
	g.Reset(testRuntime)
	if g.Snapshot().Level != 1 {
		t.Errorf("out of range start level should fall back to 1, got %d", g.Snapshot().Level)
	}
}

func TestEndlessModeNoWin(t *testing.T) {
	g := newTestGame(t, ModeEndless, nil)
	g.board = board.Board{
		{8192, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g.Step(frame(core.ActionDown))

	if g.levelCleared || g.won {
		t.Error("endless mode should never clear levels or win")
	}
	if g.State().MaxTile != 8192 {
		t.Errorf("MaxTile = %d, want 8192", g.State().MaxTile)
	}
}

func TestEndlessSpawnOddsGrow(t *testing.T) {
	g := newTestGame(t, ModeEndless, func(c *config.T2048Config) {
		c.Board.FourProbability = 0.1
		c.Difficulty = config.DifficultyConfig{
			Enabled:     true,
			Progression: config.ProgressionConfig{Type: "score", MaxAt: 1000},
			Scaling:     config.ScalingConfig{FourProbability: 0.5},
		}
	})

	if p := g.fourProbability(); p != 0.1 {
		t.Errorf("starting odds = %.2f, want 0.1", p)
	}
	g.score = 1000
	if p := g.fourProbability(); p < 0.599 || p > 0.601 {
		t.Errorf("odds at max difficulty = %.3f, want 0.6", p)
	}

	classic := newTestGame(t, ModeClassic, nil)
	classic.score = 100000
	if p := classic.fourProbability(); p != 0.5 {
		t.Errorf("classic odds must stay fixed, got %.2f", p)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	snap := g.Snapshot()

	if snap.Mode != ModeCampaign {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}
	if snap.Target != 128 {
		t.Errorf("Snapshot Target = %d, want 128", snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}

	classic := newTestGame(t, ModeClassic, nil).Snapshot()
	if classic.Level != 0 || classic.Target != 0 {
		t.Errorf("classic snapshot has level %d target %d", classic.Level, classic.Target)
	}
}

func TestRegistryModes(t *testing.T) {
	for _, id := range []string{IDClassic, IDCampaign, IDEndless} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestLevels(t *testing.T) {
	if LevelCount() != len(config.DefaultT2048Config().Campaign.Levels) {
		t.Errorf("LevelCount() = %d", LevelCount())
	}

	levels := Levels()
	if levels[0].Name != "Warm-up" || levels[0].ID != 1 {
		t.Errorf("first level = %+v, want Warm-up with ID 1", levels[0])
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Target < levels[i-1].Target {
			t.Errorf("targets not ascending at level %d", levels[i].ID)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.board = board.Board{
		{2, 0, 0, 0},
		{0, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 16384},
	}
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"2048", "Score: 0", "16384", "Max: 16384"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(ModeClassic, config.DefaultT2048Config())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("small window should pause the game")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}

	before := g.Board()
	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("growing the window should resume the game")
	}
	if g.Board() != before {
		t.Error("Resize must keep the board")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(2) == TileColor(4) {
		t.Error("2 and 4 should differ")
	}
	if TileColor(8192) != TileColor(65536) {
		t.Error("tiles above 4096 share a color")
	}
	if TileColor(4096) == TileColor(8192) {
		t.Error("4096 has its own color")
	}
}
