// Package game implements the stomp platformer simulation: player physics,
// enemy patrols, stomp-vs-damage collision resolution, defeat effects and the
// cleared state. It has no frontend dependencies; hosts drive it through Loop.
package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// Phase is the state of the loop's state machine.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseCleared
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

var (
	// ErrCanvasTooSmall is returned when the canvas cannot hold the fixed layout.
	ErrCanvasTooSmall = errors.New("canvas too small")
	// ErrSpawnOutOfBounds is returned when an enemy would spawn off the canvas.
	ErrSpawnOutOfBounds = errors.New("spawn position out of bounds")
)

// World holds all mutable simulation state.
type World struct {
	CanvasW float64
	CanvasH float64
	GroundY float64

	Player  Player
	Enemies []Enemy // spawn order; never shrinks
	Effects []DefeatedEffect
	Phase   Phase
}

// NewWorld builds the initial world for the given canvas: the player at the
// start position and one enemy per EnemySpawnOffsets entry at ground level.
func NewWorld(cfg core.RuntimeConfig) (*World, error) {
	w := float64(cfg.CanvasW)
	h := float64(cfg.CanvasH)

	if h <= GroundMargin || h-GroundMargin < max(PlayerHeight, EnemyHeight) {
		return nil, fmt.Errorf("game: canvas height %d: %w", cfg.CanvasH, ErrCanvasTooSmall)
	}
	if w < PlayerStartX+PlayerWidth || w < slices.Max(EnemySpawnOffsets) {
		return nil, fmt.Errorf("game: canvas width %d: %w", cfg.CanvasW, ErrCanvasTooSmall)
	}

	world := &World{
		CanvasW: w,
		CanvasH: h,
		GroundY: h - GroundMargin,
		Phase:   PhaseRunning,
	}
	world.Player = newPlayer(world.GroundY)

	for _, offset := range EnemySpawnOffsets {
		if err := world.SpawnEnemy(w-offset, world.GroundY); err != nil {
			return nil, err
		}
	}
	return world, nil
}

// SpawnEnemy appends a live enemy moving left. The enemy must fit on the canvas.
func (w *World) SpawnEnemy(x, y float64) error {
	if x < 0 || x+EnemyWidth > w.CanvasW || y < 0 || y > w.GroundY {
		return fmt.Errorf("game: enemy at (%.1f, %.1f): %w", x, y, ErrSpawnOutOfBounds)
	}
	w.Enemies = append(w.Enemies, Enemy{
		X:      x,
		Y:      y,
		Width:  EnemyWidth,
		Height: EnemyHeight,
		DX:     -EnemySpeed,
		Alive:  true,
	})
	return nil
}

// Cleared reports whether every enemy has been defeated.
func (w *World) Cleared() bool {
	return w.Phase == PhaseCleared
}

// AliveEnemies returns the number of enemies still alive.
func (w *World) AliveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// Update advances the simulation by one frame at time now. It is a no-op once
// the world is cleared.
func (w *World) Update(now time.Time) []Event {
	if w.Cleared() {
		return nil
	}

	w.Player.Integrate(w.CanvasW, w.GroundY)
	w.updateEnemies()
	return w.resolveCollisions(now)
}
