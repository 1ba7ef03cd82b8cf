package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/games/invaders"
	"github.com/vovakirdan/shooter-arcade/internal/games/riverrun"
	"github.com/vovakirdan/shooter-arcade/internal/platform/tui"
	"github.com/vovakirdan/shooter-arcade/internal/platform/window"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  R            - Restart
  Esc/B        - Back (menu)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Screenshot (terminal)

In the terminal a key press holds its action briefly; keep the key down
(auto-repeat) to keep moving. The window front-end tracks real key
releases and adds an on-screen pad for touch and mouse.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play riverrun
  arcade play invaders --difficulty hard
  arcade play riverrun --window
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a window instead of the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := storage.NewStore()
	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}

	if flagWindow {
		def := core.DefaultConfig()
		runtime.Width, runtime.Height = def.Width, def.Height
		err = window.Run(game, window.Options{Runtime: runtime, Logger: logger, Store: store})
	} else {
		cols, rows := terminalSize()
		_, err = tui.Run(game, tui.Options{Runtime: runtime, Cols: cols, Rows: rows, Logger: logger, Store: store})
	}
	if err != nil {
		return err
	}

	printSummary(store, gameID)
	return nil
}

// configureGame applies the CLI config path and difficulty preset to a
// game package before it is created. A custom config is loaded once here
// so a broken file is reported instead of silently replaced by defaults.
func configureGame(gameID, configPath, difficulty string) error {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return err
	}

	switch gameID {
	case "riverrun":
		if configPath != "" {
			if _, err := config.LoadRiverRun(configPath); err != nil {
				return err
			}
		}
		riverrun.SetConfigPath(configPath)
		riverrun.SetDifficultyPreset(preset)
	case "invaders":
		if configPath != "" {
			if _, err := config.LoadInvaders(configPath); err != nil {
				return err
			}
		}
		invaders.SetConfigPath(configPath)
		invaders.SetDifficultyPreset(preset)
	}
	return nil
}

// printSummary prints the best run of the session after the screen is
// restored.
func printSummary(store *storage.Store, gameID string) {
	stats := store.GameStats(gameID)
	if stats.GamesCount == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "%s: %d run(s), best %d, average %.0f\n",
		gameID, stats.GamesCount, stats.HighScore, stats.AvgScore)
}
