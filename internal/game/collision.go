package game

import "time"

// EventKind identifies something notable that happened during a frame.
type EventKind int

const (
	EventStomp   EventKind = iota // an enemy was defeated
	EventRespawn                  // the player was hit and sent back to the start
	EventCleared                  // the last enemy was defeated
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStomp:
		return "stomp"
	case EventRespawn:
		return "respawn"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is emitted by the resolver. Enemy is the spawn index involved.
type Event struct {
	Kind  EventKind
	Enemy int
}

// isStomp reports whether the player is landing on top of e.
func (w *World) isStomp(e *Enemy) bool {
	return w.Player.DY > 0 && w.Player.Y+w.Player.Height < e.Y+StompThreshold
}

// resolveCollisions tests the player against every live enemy in spawn order
// and applies each outcome immediately, so a later enemy sees the player as
// already bounced or respawned. Expired effects are purged at the end.
func (w *World) resolveCollisions(now time.Time) []Event {
	if w.Cleared() {
		return nil
	}

	var events []Event
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive || !w.Player.Box().Intersects(e.Box()) {
			continue
		}

		if w.isStomp(e) {
			e.Alive = false
			w.Player.DY = -JumpStrength * StompBounceFactor
			w.Player.IsJumping = true
			w.Effects = append(w.Effects, DefeatedEffect{X: e.X, Y: e.Y, CreatedAt: now})
			events = append(events, Event{Kind: EventStomp, Enemy: i})

			if w.AliveEnemies() == 0 {
				w.Phase = PhaseCleared
				events = append(events, Event{Kind: EventCleared, Enemy: i})
			}
			continue
		}

		w.Player.Respawn(w.GroundY)
		events = append(events, Event{Kind: EventRespawn, Enemy: i})
	}

	w.purgeEffects(now)
	return events
}
