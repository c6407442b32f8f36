package game

import (
	"time"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// Surface is the drawing target of a frame. Clear is called first every
// frame; nothing persists across clears unless it is drawn again.
type Surface interface {
	Clear()
	DrawPlayer(box core.RectF)
	DrawEnemy(box core.RectF)
	DrawEffect(box core.RectF)
	DrawBanner(text string)
}

// Draw renders the full world state at now: the player, every live enemy,
// every unexpired effect and, once cleared, the banner.
func (w *World) Draw(now time.Time, dst Surface) {
	dst.DrawPlayer(w.Player.Box())
	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			dst.DrawEnemy(w.Enemies[i].Box())
		}
	}
	for _, e := range w.LiveEffects(now) {
		dst.DrawEffect(e.Box())
	}
}

// OpKind is the type of a recorded draw call.
type OpKind int

const (
	OpPlayer OpKind = iota
	OpEnemy
	OpEffect
	OpBanner
)

// DrawOp is one recorded draw call.
type DrawOp struct {
	Kind OpKind
	Box  core.RectF
	Text string
}

// DisplayList is a Surface that records draw calls so they can be replayed
// later, e.g. by a host whose drawing happens outside the update step.
type DisplayList struct {
	Ops []DrawOp
}

func (d *DisplayList) Clear() { d.Ops = d.Ops[:0] }

func (d *DisplayList) DrawPlayer(box core.RectF) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpPlayer, Box: box})
}

func (d *DisplayList) DrawEnemy(box core.RectF) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpEnemy, Box: box})
}

func (d *DisplayList) DrawEffect(box core.RectF) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpEffect, Box: box})
}

func (d *DisplayList) DrawBanner(text string) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpBanner, Text: text})
}

// Count returns how many ops of the given kind were recorded.
func (d *DisplayList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Replay issues the recorded calls against dst, starting with a clear.
func (d *DisplayList) Replay(dst Surface) {
	dst.Clear()
	for _, op := range d.Ops {
		switch op.Kind {
		case OpPlayer:
			dst.DrawPlayer(op.Box)
		case OpEnemy:
			dst.DrawEnemy(op.Box)
		case OpEffect:
			dst.DrawEffect(op.Box)
		case OpBanner:
			dst.DrawBanner(op.Text)
		}
	}
}
