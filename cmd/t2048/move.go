package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagBoard string
	flagSpawn bool
	flagJSON  bool
)

var moveCmd = &cobra.Command{
	Use:   "move <up|down|left|right>",
	Short: "Apply one move to a board and print the result",
	Long: `Slide a board once and print the new board and the points scored.

The board is four rows separated by '/', ';' or newlines, with cells
separated by commas or spaces. Empty cells are 0 or '.'.
A move that changes nothing is reported with moved=false.

With --spawn a new tile is added after a move that changed the board,
using the configured odds and --seed.

Examples:
  t2048 move left --board "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0"
  t2048 move u --board "2 . . 2; 2 . . 2; . . . .; . . . ." --json
  t2048 move right --board "4,4,8,8/0,0,0,0/0,0,0,0/0,0,0,0" --spawn --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagBoard, "board", "", "Board to move (required)")
	moveCmd.Flags().BoolVar(&flagSpawn, "spawn", false, "Spawn a tile after a move that changed the board")
	moveCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	_ = moveCmd.MarkFlagRequired("board")
}

// moveOutcome is the result of a single scripted move.
type moveOutcome struct {
	Direction string  `json:"direction"`
	Board     [][]int `json:"board"`
	Score     int     `json:"score"`
	Moved     bool    `json:"moved"`
	Spawned   *[2]int `json:"spawned,omitempty"` // row, col
	GameOver  bool    `json:"game_over"`
	// Directions that would change the resulting board
	ValidMoves []string `json:"valid_moves"`

	result board.Board
}

// applyMove slides the board and optionally spawns a tile.
func applyMove(boardText, dirText string, spawn bool, rng board.Rand, fourProb float64) (moveOutcome, error) {
	dir, err := board.ParseDirection(dirText)
	if err != nil {
		return moveOutcome{}, err
	}
	b, err := board.Parse(boardText)
	if err != nil {
		return moveOutcome{}, err
	}

	res := board.Slide(b, dir)
	out := moveOutcome{
		Direction: dir.String(),
		Score:     res.Score,
		Moved:     board.Changed(b, res.Board),
		result:    res.Board,
	}

	if spawn && out.Moved {
		next, cell, ok := board.SpawnTileOdds(out.result, rng, fourProb)
		if ok {
			out.result = next
			out.Spawned = &[2]int{cell.Row, cell.Col}
		}
	}

	out.Board = out.result.Rows()
	out.GameOver = t2048.IsGameOver(out.result)
	out.ValidMoves = []string{}
	for _, d := range t2048.ValidMoves(out.result) {
		out.ValidMoves = append(out.ValidMoves, d.String())
	}
	return out, nil
}

func runMove(cmd *cobra.Command, args []string) error {
	if flagBoard == "" {
		return fmt.Errorf("--board is required")
	}
	seed := flagSeed
	if seed == 0 {
		seed = runtimeConfig().Seed
	}
	rng := rand.New(rand.NewSource(seed))

	out, err := applyMove(flagBoard, args[0], flagSpawn, rng, appConfig.Board.FourProbability)
	if err != nil {
		return err
	}
	return writeMove(cmd.OutOrStdout(), out, flagJSON)
}

// writeMove prints an outcome as text or JSON.
func writeMove(w io.Writer, out moveOutcome, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(w, out.result.String())
	fmt.Fprintf(w, "score: %d\n", out.Score)
	fmt.Fprintf(w, "moved: %t\n", out.Moved)
	if out.Spawned != nil {
		fmt.Fprintf(w, "spawned: row %d, col %d\n", out.Spawned[0], out.Spawned[1])
	}
	if out.GameOver {
		fmt.Fprintln(w, "game over")
	}
	return nil
}
