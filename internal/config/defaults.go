package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/stomp.yaml
var defaultYAML []byte

// Default returns the built-in settings. It matches defaults/stomp.yaml.
func Default() Settings {
	return Settings{
		Canvas: CanvasSettings{
			Width:  800,
			Height: 400,
		},
		TickRate: 60,
		Terminal: TerminalSettings{
			KeyReleaseAfter: 600 * time.Millisecond,
		},
		Window: WindowSettings{
			Scale: 1.5,
			Title: "Stomp",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
