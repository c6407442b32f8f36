package game

import (
	"time"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// DefeatedEffect marks where an enemy was stomped. It is drawn unchanged until
// it is older than EffectDuration.
type DefeatedEffect struct {
	X, Y      float64
	CreatedAt time.Time
}

// Expired reports whether the effect is past its display duration at now.
func (e DefeatedEffect) Expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) > EffectDuration
}

// Box returns the area the effect glyph occupies.
func (e DefeatedEffect) Box() core.RectF {
	return core.NewRectF(e.X, e.Y, EnemyWidth, EnemyHeight)
}

// purgeEffects drops expired effects, keeping the rest in creation order.
func (w *World) purgeEffects(now time.Time) {
	kept := w.Effects[:0]
	for _, e := range w.Effects {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	w.Effects = kept
}

// LiveEffects returns the effects that should be drawn at now. Purging only
// happens while running, so expiry is also checked here.
func (w *World) LiveEffects(now time.Time) []DefeatedEffect {
	var live []DefeatedEffect
	for _, e := range w.Effects {
		if !e.Expired(now) {
			live = append(live, e)
		}
	}
	return live
}
