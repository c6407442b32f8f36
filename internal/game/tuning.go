package game

import "time"

// Physics and layout tuning. These are compile-time constants; hosts only
// choose the canvas size.
const (
	Gravity      = 0.6  // added to the player's dy every frame
	JumpStrength = 15.0 // upward impulse of a jump
	GroundMargin = 50.0 // ground line sits this far above the canvas bottom

	PlayerWidth  = 30.0
	PlayerHeight = 30.0
	PlayerSpeed  = 5.0
	PlayerStartX = 50.0

	EnemyWidth  = 30.0
	EnemyHeight = 30.0
	EnemySpeed  = 2.0 // enemies spawn moving left at this speed

	// A collision only counts as a stomp when the player's bottom edge is
	// above enemy.Y + StompThreshold.
	StompThreshold    = 20.0
	StompBounceFactor = 0.5 // bounce dy = -JumpStrength * StompBounceFactor

	EffectDuration = 1000 * time.Millisecond

	ClearBanner = "CLEAR!"
)

// EnemySpawnOffsets are the distances from the right canvas edge at which the
// enemies are spawned, in spawn order.
var EnemySpawnOffsets = []float64{100, 250}
