package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stomp/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Left/Right  - Run
  Space/Up    - Jump
  Esc         - Quit

Examples:
  stomp window
  stomp window --config ./my-stomp.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(settings, os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	loop, err := newLoop(settings)
	if err != nil {
		fail(err)
	}

	logger.Info("opening window", "canvas", settings.Canvas, "scale", settings.Window.Scale)

	runErr := desktop.Run(loop, settings.Runtime(), desktop.Options{
		Title:    settings.Window.Title,
		Scale:    settings.Window.Scale,
		TickRate: settings.TickRate,
		Logger:   logger,
	})
	if runErr != nil {
		closeLog()
		fail(runErr)
	}
}
