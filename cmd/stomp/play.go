package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stomp/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Terminals do not report key releases, so a direction key keeps you moving
until it stops repeating (terminal.key_release_after) or you press Down.

Controls:
  Left/Right (A/D, H/L)  - Run
  Space/Up (W, K)        - Jump
  Down (S, J)            - Stop running
  Q/Esc/Ctrl+C           - Quit

Examples:
  stomp play
  stomp play --fps 30
  stomp play --log-file stomp.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fail(err)
	}

	// Logs would corrupt the alt screen, so only --log-file receives them
	logger, closeLog, err := newLogger(settings, nil)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	loop, err := newLoop(settings)
	if err != nil {
		fail(err)
	}

	logger.Info("starting terminal game", "canvas", settings.Canvas, "cells", [2]int{width, height})

	runErr := tui.Run(loop, settings.Runtime(), tui.Options{
		Width:           width,
		Height:          height,
		TickRate:        settings.TickRate,
		KeyReleaseAfter: settings.Terminal.KeyReleaseAfter,
		Logger:          logger,
	})
	if runErr != nil {
		closeLog()
		fail(runErr)
	}
}
