package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stomp/internal/core"
	"github.com/vovakirdan/tui-stomp/internal/game"
	"github.com/vovakirdan/tui-stomp/internal/platform"
	"github.com/vovakirdan/tui-stomp/internal/platform/tui"
)

var (
	flagFrames   int
	flagScript   string
	flagRealtime bool
	flagCols     int
	flagRows     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Simulate a number of frames without a display and print the last frame.

Key input comes from --script, a comma-separated list of
"frame:down|up:key" entries. An entry for frame N is applied before frame
N+1 is simulated, so frame 0 entries apply before the first frame. Keys are
ArrowRight, ArrowLeft, ArrowUp and space.

By default frames run back to back on a simulated clock. With --realtime
the loop runs at the configured tick rate on the wall clock.

Examples:
  stomp sim --frames 600
  stomp sim --frames 300 --script "0:down:ArrowRight,194:down:space"
  stomp sim --frames 120 --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Scheduled key events")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at the tick rate on the wall clock")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Width of the printed frame in cells")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Height of the printed frame in cells")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagFrames <= 0 {
		fail(fmt.Errorf("--frames must be positive, got %d", flagFrames))
	}

	settings, err := loadSettings()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(settings, os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	script, err := core.ParseScript(flagScript)
	if err != nil {
		fail(err)
	}

	loop, err := newLoop(settings)
	if err != nil {
		fail(err)
	}

	screen := core.NewScreen(flagCols, flagRows)
	surface := tui.NewScreenSurface(screen, settings.Runtime())

	logger.Debug("simulation starting",
		"frames", flagFrames, "script", len(script), "realtime", flagRealtime)

	if flagRealtime {
		err = simRealtime(loop, settings.TickRate, script, surface, logger)
	} else {
		simFixed(loop, settings.TickRate, script, surface, logger)
	}
	if err != nil {
		closeLog()
		fail(err)
	}

	w := loop.World()
	logger.Info("simulation finished",
		"frame", loop.Frame(),
		"phase", w.Phase,
		"alive", w.AliveEnemies(),
		"player", fmt.Sprintf("(%.1f, %.1f)", w.Player.X, w.Player.Y))

	fmt.Print(screen.String())
}

// simFixed runs the frames back to back, advancing a simulated clock by one
// frame period per tick.
func simFixed(loop *game.Loop, tickRate int, script core.Script, dst game.Surface, logger *log.Logger) {
	period := time.Second / time.Duration(tickRate)
	now := time.Now()

	for loop.Frame() < uint64(flagFrames) {
		for _, ev := range script.At(int(loop.Frame())) {
			loop.HandleKey(ev)
		}
		now = now.Add(period)
		platform.LogStep(logger, loop.Tick(now, dst))
	}
}

// simRealtime runs the loop on the wall clock until the frame budget is
// spent or the process is interrupted.
func simRealtime(loop *game.Loop, tickRate int, script core.Script, dst game.Surface, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, ev := range script.At(0) {
		loop.HandleKey(ev)
	}

	err := loop.Run(ctx, tickRate, dst, func(res game.StepResult) {
		platform.LogStep(logger, res)
		if res.Frame >= uint64(flagFrames) {
			loop.Stop()
			return
		}
		for _, ev := range script.At(int(res.Frame)) {
			loop.HandleKey(ev)
		}
	})
	if err != nil {
		return fmt.Errorf("simulation interrupted at frame %d: %w", loop.Frame(), err)
	}
	return nil
}
