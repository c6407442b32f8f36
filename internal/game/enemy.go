package game

import "github.com/vovakirdan/tui-stomp/internal/core"

// Enemy patrols horizontally until stomped. Dead enemies stay in place.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	DX            float64
	Alive         bool
}

// Box returns the enemy's collision box.
func (e *Enemy) Box() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// Patrol moves the enemy one step and reverses it once it has crossed a
// canvas edge. The position is not clamped, so it may overshoot by one step.
func (e *Enemy) Patrol(canvasW float64) {
	if !e.Alive {
		return
	}

	e.X += e.DX

	if e.X < 0 || e.X+e.Width > canvasW {
		e.DX = -e.DX
	}
}

func (w *World) updateEnemies() {
	for i := range w.Enemies {
		w.Enemies[i].Patrol(w.CanvasW)
	}
}
