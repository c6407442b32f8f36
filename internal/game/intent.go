package game

import (
	"sync"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// Intent is a player command queued by an input source and applied at the
// start of the next frame.
type Intent interface {
	apply(w *World)
}

// MoveIntent sets the horizontal movement: -1 left, 0 stop, 1 right.
type MoveIntent struct {
	Dir int
}

func (m MoveIntent) apply(w *World) {
	w.Player.SetHorizontal(m.Dir)
}

// JumpIntent attempts a jump; ignored while airborne.
type JumpIntent struct{}

func (JumpIntent) apply(w *World) {
	w.Player.Jump()
}

// IntentForKeyDown translates a key press. ok is false for unrecognized keys.
func IntentForKeyDown(k core.Key) (in Intent, ok bool) {
	switch {
	case k.IsRight():
		return MoveIntent{Dir: 1}, true
	case k.IsLeft():
		return MoveIntent{Dir: -1}, true
	case k.IsJump():
		return JumpIntent{}, true
	}
	return nil, false
}

// IntentForKeyUp translates a key release. Releasing either horizontal key
// stops movement regardless of which one is still held.
func IntentForKeyUp(k core.Key) (in Intent, ok bool) {
	if k.IsHorizontal() {
		return MoveIntent{Dir: 0}, true
	}
	return nil, false
}

// Inbox is a FIFO of pending intents. Post is safe to call from any goroutine.
type Inbox struct {
	mu      sync.Mutex
	pending []Intent
}

// Post queues an intent for the next frame.
func (b *Inbox) Post(in Intent) {
	b.mu.Lock()
	b.pending = append(b.pending, in)
	b.mu.Unlock()
}

// Drain removes and returns all pending intents in arrival order.
func (b *Inbox) Drain() []Intent {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.pending
	b.pending = nil
	return out
}

// Len returns the number of pending intents.
func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
