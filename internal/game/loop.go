package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// ErrInvalidTickRate is returned by Run for a non-positive tick rate.
var ErrInvalidTickRate = errors.New("tick rate must be positive")

// StepResult is returned by Loop.Tick after each frame.
type StepResult struct {
	Frame  uint64  // 1-based index of the frame just run
	Phase  Phase   // phase after the frame
	Events []Event // resolver events, in the order they happened
}

// Loop owns a World and runs it one frame at a time. Input reaches the world
// only through the inbox, which is drained at the top of every frame, so all
// state mutation happens inside Tick.
type Loop struct {
	world *World
	inbox Inbox
	frame uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLoop creates a loop around an existing world.
func NewLoop(w *World) *Loop {
	return &Loop{
		world: w,
		stop:  make(chan struct{}),
	}
}

// World returns the simulated world. Callers must not read it while another
// goroutine is inside Run.
func (l *Loop) World() *World {
	return l.world
}

// Frame returns the number of frames run so far.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Post queues an intent for the next frame.
func (l *Loop) Post(in Intent) {
	l.inbox.Post(in)
}

// KeyDown handles a key press. It reports whether the key was recognized.
func (l *Loop) KeyDown(k core.Key) bool {
	in, ok := IntentForKeyDown(k)
	if ok {
		l.Post(in)
	}
	return ok
}

// KeyUp handles a key release. It reports whether the key was recognized.
func (l *Loop) KeyUp(k core.Key) bool {
	in, ok := IntentForKeyUp(k)
	if ok {
		l.Post(in)
	}
	return ok
}

// HandleKey dispatches a key event to KeyDown or KeyUp.
func (l *Loop) HandleKey(ev core.KeyEvent) bool {
	if ev.Kind == core.KeyUp {
		return l.KeyUp(ev.Key)
	}
	return l.KeyDown(ev.Key)
}

// Tick runs one frame at time now: apply queued intents, clear dst, draw the
// current state, then either advance the simulation or, once cleared, draw
// the banner. The host samples now once per frame; drawing, effect stamps and
// the effect purge all use it.
func (l *Loop) Tick(now time.Time, dst Surface) StepResult {
	l.frame++

	for _, in := range l.inbox.Drain() {
		in.apply(l.world)
	}

	dst.Clear()
	l.world.Draw(now, dst)

	var events []Event
	if l.world.Cleared() {
		dst.DrawBanner(ClearBanner)
	} else {
		events = l.world.Update(now)
	}

	return StepResult{
		Frame:  l.frame,
		Phase:  l.world.Phase,
		Events: events,
	}
}

// Stop asks Run to return. It is safe to call more than once and from any
// goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}

// Run ticks the loop tickRate times per second until ctx is done or Stop is
// called. onStep, if non-nil, receives every frame's result. Run returns nil
// after Stop and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context, tickRate int, dst Surface, onStep func(StepResult)) error {
	if tickRate <= 0 {
		return fmt.Errorf("game: %d: %w", tickRate, ErrInvalidTickRate)
	}

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case now := <-ticker.C:
			// Stop wins over a ready tick.
			if l.Stopped() {
				return nil
			}
			res := l.Tick(now, dst)
			if onStep != nil {
				onStep(res)
			}
		}
	}
}
