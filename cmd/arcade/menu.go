package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/platform/tui"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc or B in a game to return to the menu; Tab in the menu
shows the runs played this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Run history
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closer.Close()

	store := storage.NewStore()
	width, height := terminalSize()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, width, height)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from history
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
			return err
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		// Fresh seed for each game unless one was pinned
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, tui.Options{
			Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: seed},
			Cols:    width,
			Rows:    height,
			Logger:  logger,
			Store:   store,
		})
		if err != nil {
			return err
		}
		if !result.Back {
			return nil
		}
	}
}

// terminalSize returns the terminal size, 80x24 when it is unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
