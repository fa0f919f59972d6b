package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagClear bool
	flagLimit int
	flagNoTUI bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or a summary of every mode.

Without a mode and in an interactive terminal, opens the scoreboard.

Examples:
  t2048 scores
  t2048 scores classic
  t2048 scores endless --limit 25
  t2048 scores campaign --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagNoTUI, "plain", false, "Print a summary instead of opening the scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a mode")
		}
		if isTerminal() && !flagNoTUI {
			cfg := runtimeConfig()
			_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			return err
		}
		return printSummary(cmd, store)
	}

	gameID, err := resolveMode(args[0])
	if err != nil {
		return err
	}
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play %s' to set the first high score!\n", args[0])
		return nil
	}

	t := newTable("Rank", "Score", "Max Tile", "Moves", "Date")
	for i, e := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.MaxTile),
			strconv.Itoa(e.Moves),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	fmt.Fprintln(out, t.Render())

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d  Games: %d  Average: %.0f  Best tile: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestTile)
	return nil
}

// printSummary prints one line of stats per mode that has scores.
func printSummary(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	t := newTable("Mode", "Games", "Best", "Average", "Best Tile", "Last Played")
	for _, id := range ids {
		s := all[id]
		t.Row(
			id,
			strconv.Itoa(s.GamesCount),
			strconv.Itoa(s.HighScore),
			fmt.Sprintf("%.0f", s.AvgScore),
			strconv.Itoa(s.BestTile),
			s.LastPlayed.Local().Format("2006-01-02 15:04"),
		)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

// newTable creates a plain bordered table with a bold header.
func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
