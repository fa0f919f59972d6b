package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
"Select Level..." starts the campaign at any level.
Press B or Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("menu needs an interactive terminal")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "id", menuResult.GameID, "err", err)
			continue
		}
		if err := applyStartLevel(game, menuResult.StartLevel); err != nil {
			logger.Warn("ignoring start level", "err", err)
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.RunGame(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		logger.Info("game finished", "mode", game.ID(), "score", result.State.Score, "max_tile", result.State.MaxTile)

		if !result.BackToMenu {
			return nil
		}
	}
}
