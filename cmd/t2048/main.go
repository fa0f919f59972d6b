// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 list                 - List game modes
//	t2048 play [mode]          - Play a mode (classic, campaign, endless)
//	t2048 menu                 - Pick modes interactively
//	t2048 serve                - Start SSH server for remote play
//	t2048 scores [mode]        - Show high scores for a mode
//	t2048 move <dir> --board   - Apply one move to a board and print it
//	t2048 config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Load configuration from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--theme <name>        - default or mono
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogLevel   string

	// Effective configuration, set before any command runs
	appConfig config.T2048Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys or WASD. Equal tiles merge and add
their value to your score. A new tile appears after every move that
changes the board. The game ends when no move can change it.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  move     - Apply a single move to a board (non-interactive)
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play campaign --level 3
  t2048 menu --difficulty hard
  t2048 serve --ssh :2222
  t2048 move left --board "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0"`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: "+strings.Join(tui.ThemeNames, ", "))
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires logging, configuration and theme from the global flags.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "t2048",
	})
	log.SetDefault(logger)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset := config.ParsePreset(flagDifficulty)
	if preset == "" && flagDifficulty != "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Debug("configuration loaded",
		"four_probability", cfg.Board.FourProbability,
		"levels", len(cfg.Campaign.Levels),
		"difficulty", cfg.Difficulty.Enabled,
	)

	appConfig = cfg
	t2048.Configure(cfg)

	theme, err := tui.ThemeByName(flagTheme, nil)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)
	return nil
}

// resolveMode maps a mode name or registry ID to a registered game ID.
func resolveMode(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", string(t2048.ModeClassic):
		return t2048.IDClassic, nil
	case string(t2048.ModeCampaign):
		return t2048.IDCampaign, nil
	case string(t2048.ModeEndless):
		return t2048.IDEndless, nil
	}
	if registry.Exists(name) {
		return name, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", name)
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
