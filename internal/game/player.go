package game

import "github.com/vovakirdan/tui-stomp/internal/core"

// Player is the controllable character. Y grows downward; the player rests on
// the ground when Y == groundY.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	DX, DY        float64
	IsJumping     bool
}

func newPlayer(groundY float64) Player {
	p := Player{
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
	}
	p.Respawn(groundY)
	return p
}

// Box returns the player's collision box.
func (p *Player) Box() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Integrate advances the player by one frame: horizontal intent, then gravity,
// then wall and ground clamping.
func (p *Player) Integrate(canvasW, groundY float64) {
	p.X += p.DX

	p.DY += Gravity
	p.Y += p.DY

	p.X = core.ClampF(p.X, 0, canvasW-p.Width)

	if p.Y > groundY {
		p.Y = groundY
		p.DY = 0
		p.IsJumping = false
	}
}

// Jump starts a jump unless one is already in progress.
func (p *Player) Jump() {
	if p.IsJumping {
		return
	}
	p.IsJumping = true
	p.DY = -JumpStrength
}

// SetHorizontal sets the lateral intent: dir is -1, 0 or 1.
func (p *Player) SetHorizontal(dir int) {
	switch {
	case dir > 0:
		p.DX = p.Speed
	case dir < 0:
		p.DX = -p.Speed
	default:
		p.DX = 0
	}
}

// Respawn puts the player back at the start position at rest.
func (p *Player) Respawn(groundY float64) {
	p.X = PlayerStartX
	p.Y = groundY
	p.DX = 0
	p.DY = 0
	p.IsJumping = false
}
