// Package config provides YAML-based host settings for the stomp frontends:
// canvas size, tick rate, terminal and window options, and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// Settings is the root of the configuration file.
type Settings struct {
	Canvas   CanvasSettings   `yaml:"canvas"`
	TickRate int              `yaml:"tick_rate"`
	Terminal TerminalSettings `yaml:"terminal"`
	Window   WindowSettings   `yaml:"window"`
	Log      LogSettings      `yaml:"log"`
}

// CanvasSettings defines the world size in pixels.
type CanvasSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerminalSettings configures the Bubble Tea frontend.
type TerminalSettings struct {
	KeyReleaseAfter time.Duration `yaml:"key_release_after"`
}

// WindowSettings configures the Ebiten frontend.
type WindowSettings struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

// LogSettings configures the charmbracelet logger.
type LogSettings struct {
	Level string `yaml:"level"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Validate checks the settings for values no frontend can work with.
// Canvas size limits are enforced by game.NewWorld.
func (s Settings) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas %dx%d: %w", s.Canvas.Width, s.Canvas.Height, ErrInvalid)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d: %w", s.TickRate, ErrInvalid)
	}
	if s.Terminal.KeyReleaseAfter <= 0 {
		return fmt.Errorf("config: terminal.key_release_after %v: %w", s.Terminal.KeyReleaseAfter, ErrInvalid)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("config: window.scale %v: %w", s.Window.Scale, ErrInvalid)
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", s.Log.Level, ErrInvalid)
	}
	return nil
}

// Runtime returns the simulation parameters derived from the settings.
func (s Settings) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		CanvasW:  s.Canvas.Width,
		CanvasH:  s.Canvas.Height,
		TickRate: s.TickRate,
	}
}
