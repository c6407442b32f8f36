package game

import (
	"math/rand"
	"testing"
)

func TestPlayerAtRestStaysGrounded(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	for i := 0; i < 500; i++ {
		p.Integrate(w.CanvasW, w.GroundY)
		if p.Y != w.GroundY || p.DY != 0 || p.IsJumping {
			t.Fatalf("frame %d: player left the ground: y=%f dy=%f jumping=%v", i, p.Y, p.DY, p.IsJumping)
		}
		if p.X != PlayerStartX {
			t.Fatalf("frame %d: gravity moved the player horizontally to %f", i, p.X)
		}
	}
}

func TestGravityIncreasesDYUntilLanding(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Y = 100
	p.IsJumping = true

	prev := p.DY
	for i := 0; i < 1000 && p.Y < w.GroundY; i++ {
		p.Integrate(w.CanvasW, w.GroundY)
		if p.Y == w.GroundY {
			break
		}
		if p.DY <= prev {
			t.Fatalf("frame %d: dy did not increase: %f -> %f", i, prev, p.DY)
		}
		if !approxEqual(p.DY-prev, Gravity) {
			t.Fatalf("frame %d: dy grew by %f, expected %f", i, p.DY-prev, Gravity)
		}
		prev = p.DY
	}

	if p.Y != w.GroundY || p.DY != 0 || p.IsJumping {
		t.Errorf("player should land: y=%f dy=%f jumping=%v", p.Y, p.DY, p.IsJumping)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	p.Jump()
	if p.DY != -JumpStrength || !p.IsJumping {
		t.Fatalf("Jump() from ground: dy=%f jumping=%v, expected dy=%f jumping=true", p.DY, p.IsJumping, -JumpStrength)
	}

	p.Integrate(w.CanvasW, w.GroundY)
	airborne := p.DY

	p.Jump()
	if p.DY != airborne {
		t.Errorf("second Jump() while airborne changed dy from %f to %f", airborne, p.DY)
	}
}

func TestJumpingFlagMatchesGroundContact(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Jump()

	for i := 0; i < 200; i++ {
		p.Integrate(w.CanvasW, w.GroundY)
		grounded := p.Y == w.GroundY && p.DY == 0
		if grounded == p.IsJumping {
			t.Fatalf("frame %d: IsJumping=%v but grounded=%v (y=%f dy=%f)", i, p.IsJumping, grounded, p.Y, p.DY)
		}
	}
	if p.IsJumping {
		t.Error("player should have landed within 200 frames")
	}
}

func TestHorizontalClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, dx     float64
		expectedX float64
	}{
		{"left wall", 2, -PlayerSpeed, 0},
		{"right wall", 768, PlayerSpeed, 770},
		{"free move", 100, PlayerSpeed, 105},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Player.X = tc.x
			w.Player.DX = tc.dx
			w.Player.Integrate(w.CanvasW, w.GroundY)
			if w.Player.X != tc.expectedX {
				t.Errorf("x = %f, expected %f", w.Player.X, tc.expectedX)
			}
			if w.Player.DX != tc.dx {
				t.Errorf("clamping must not change dx, got %f", w.Player.DX)
			}
		})
	}
}

func TestPlayerBoundsHoldUnderRandomInput(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		p.SetHorizontal(rng.Intn(3) - 1)
		if rng.Intn(10) == 0 {
			p.Jump()
		}
		p.Integrate(w.CanvasW, w.GroundY)

		if p.X < 0 || p.X > w.CanvasW-p.Width {
			t.Fatalf("frame %d: x=%f out of [0, %f]", i, p.X, w.CanvasW-p.Width)
		}
		if p.Y > w.GroundY {
			t.Fatalf("frame %d: y=%f below ground %f", i, p.Y, w.GroundY)
		}
	}
}

func TestSetHorizontal(t *testing.T) {
	var p Player
	p.Speed = PlayerSpeed

	p.SetHorizontal(1)
	if p.DX != PlayerSpeed {
		t.Errorf("right: dx=%f", p.DX)
	}
	p.SetHorizontal(-1)
	if p.DX != -PlayerSpeed {
		t.Errorf("left: dx=%f", p.DX)
	}
	p.SetHorizontal(0)
	if p.DX != 0 {
		t.Errorf("stop: dx=%f", p.DX)
	}
}
