package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing 2048. The mode defaults to classic.

Modes:
  classic   - One board, no target, 50/50 odds of a 2 or a 4
  campaign  - Reach each level's target tile, board and score carry over
  endless   - Classic rules; the odds of a 4 grow with your score

Controls:
  Arrows/WASD  - Slide the board
  P            - Pause
  R            - Restart
  Enter        - Continue after clearing a level
  Ctrl+S       - Save a text screenshot to ~/.t2048/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Mostly 2s
  normal - Even odds, endless difficulty starts at 30%
  hard   - Mostly 4s, endless difficulty starts at 70%
  fixed  - No endless progression

Examples:
  t2048 play
  t2048 play endless --difficulty hard
  t2048 play campaign --level 5
  t2048 play classic --seed 42 --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-indexed)")
}

func runPlay(_ *cobra.Command, args []string) error {
	var mode string
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if err := applyStartLevel(game, flagLevel); err != nil {
		return err
	}

	if !isTerminal() {
		return errors.New("play needs an interactive terminal (try 't2048 move' for scripted use)")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyStartLevel sets the campaign start level, rejecting out-of-range
// levels and levels for modes without a campaign.
func applyStartLevel(game registry.Game, level int) error {
	if level == 0 {
		return nil
	}
	sl, ok := game.(tui.StartLeveler)
	if !ok || game.ID() != t2048.IDCampaign {
		return fmt.Errorf("--level only applies to the campaign mode")
	}
	if n := t2048.LevelCount(); level < 1 || level > n {
		return fmt.Errorf("--level must be between 1 and %d, got %d", n, level)
	}
	sl.SetStartLevel(level)
	return nil
}
