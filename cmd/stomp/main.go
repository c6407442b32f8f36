// stomp is a small platformer: jump on every patrolling enemy to clear the
// stage.
//
// Usage:
//
//	stomp play               - Play in the terminal
//	stomp window             - Play in a desktop window
//	stomp sim                - Run a headless simulation and print the last frame
//
// Global flags:
//
//	--config <path>     - Path to a custom settings YAML
//	--fps <rate>        - Override the tick rate from the settings
//	--log-level <level> - Override the log level (debug, info, warn, error)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stomp/internal/config"
	"github.com/vovakirdan/tui-stomp/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stomp",
	Short: "Stomp - a tiny platformer",
	Long: `Stomp is a single-screen platformer. Run and jump with the arrow keys
and land on top of every enemy to clear the stage. Touching an enemy from
the side sends you back to the start.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a scripted headless simulation

Examples:
  stomp play
  stomp window --fps 120
  stomp sim --frames 300 --script "10:down:ArrowRight,194:down:space"`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
}

// loadSettings reads the settings and applies the global flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagFPS != 0 {
		settings.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// newLogger builds the process logger. Logs go to the --log-file when set,
// otherwise to fallback; a nil fallback discards them.
// The returned close function must be called on exit.
func newLogger(settings config.Settings, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", settings.Log.Level, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stomp",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newLoop builds the standard stage for the settings.
func newLoop(settings config.Settings) (*game.Loop, error) {
	world, err := game.NewWorld(settings.Runtime())
	if err != nil {
		return nil, err
	}
	return game.NewLoop(world), nil
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
