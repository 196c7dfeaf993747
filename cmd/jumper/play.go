package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagConfig  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or pick one from the menu when no mode
is named. After a run ends the road is rebuilt; press Enter to go again.

Controls:
  Space/J/Left/Left click   - Jump one tile
  K/X/Right/Right click     - Jump two tiles
  Enter                     - Start a run
  Esc/B                     - Back to the menu (between runs)
  Ctrl+S                    - Save a screenshot
  Q/Ctrl+C                  - Quit

Examples:
  jumper play
  jumper play jumper
  jumper play jumper_sprint --seed 42
  jumper play --config ./my-jumper.yaml --log-file ./jumper.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the TUI owns the terminal)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return unknownModeError(gameID)
		}
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	jumper.SetConfigPath(flagConfig)
	jumper.SetLogger(logger)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		if gameID == "" {
			menuResult, menuErr := tui.RunMenu(store, cfg)
			if menuErr != nil {
				return menuErr
			}
			cfg = menuResult.Config

			if menuResult.Quit {
				return nil
			}

			if menuResult.WantsScoreboard {
				goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if sbErr != nil {
					return sbErr
				}
				if goBack {
					continue
				}
				return nil
			}

			gameID = menuResult.GameID
		}

		game, createErr := registry.Create(gameID)
		if createErr != nil {
			return fmt.Errorf("creating game: %w", createErr)
		}

		logger.Info("game started", "game", gameID, "seed", cfg.Seed)
		goBack, runErr := tui.Run(game, store, logger, cfg)
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		if !goBack {
			return nil
		}

		// Fresh road layout for the next pick unless a seed was given.
		gameID = ""
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
	}
}

// openLogger returns a file logger for path, or a discarding one when path
// is empty.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
