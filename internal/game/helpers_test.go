package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

var epoch = time.Unix(1_700_000_000, 0)

const frameDuration = time.Second / 60

// frameTime returns the synthetic timestamp of the given frame.
func frameTime(frame int) time.Time {
	return epoch.Add(time.Duration(frame) * frameDuration)
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(core.DefaultConfig())
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	return w
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
