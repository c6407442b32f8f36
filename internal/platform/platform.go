// Package platform holds helpers shared by the stomp frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stomp/internal/game"
)

// LogStep reports the notable events of a frame.
func LogStep(logger *log.Logger, res game.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case game.EventStomp:
			logger.Debug("enemy stomped", "frame", res.Frame, "enemy", ev.Enemy)
		case game.EventRespawn:
			logger.Debug("player hit, respawning", "frame", res.Frame, "enemy", ev.Enemy)
		case game.EventCleared:
			logger.Info("stage cleared", "frame", res.Frame)
		}
	}
}
