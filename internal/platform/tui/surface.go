package tui

import (
	"math"

	"github.com/vovakirdan/tui-stomp/internal/core"
	"github.com/vovakirdan/tui-stomp/internal/game"
)

// Glyphs used for the terminal rendering.
const (
	PlayerChar = '█'
	EnemyChar  = '▓'
	EffectChar = '*'
	GroundChar = '═'
)

// ScreenSurface draws world-space boxes onto a character screen, scaling the
// canvas to whatever size the screen currently has.
type ScreenSurface struct {
	screen  *core.Screen
	canvasW float64
	canvasH float64
}

// NewScreenSurface creates a surface for a world of the given canvas size.
func NewScreenSurface(screen *core.Screen, cfg core.RuntimeConfig) *ScreenSurface {
	return &ScreenSurface{
		screen:  screen,
		canvasW: float64(cfg.CanvasW),
		canvasH: float64(cfg.CanvasH),
	}
}

// Screen returns the underlying buffer.
func (s *ScreenSurface) Screen() *core.Screen {
	return s.screen
}

// toCol and toRow map world coordinates onto fractional cell positions.
func (s *ScreenSurface) toCol(x float64) float64 {
	return x * float64(s.screen.Width()) / s.canvasW
}

func (s *ScreenSurface) toRow(y float64) float64 {
	return y * float64(s.screen.Height()) / s.canvasH
}

// project maps a world box onto the cells it covers. Every visible box
// covers at least one cell.
func (s *ScreenSurface) project(box core.RectF) core.Rect {
	x0 := int(math.Floor(s.toCol(box.X)))
	y0 := int(math.Floor(s.toRow(box.Y)))
	x1 := max(int(math.Ceil(s.toCol(box.Right()))), x0+1)
	y1 := max(int(math.Ceil(s.toRow(box.Bottom()))), y0+1)

	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear wipes the screen and paints the ground under the sprites.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()

	floor := s.canvasH - game.GroundMargin + game.PlayerHeight
	row := core.Clamp(int(math.Ceil(s.toRow(floor))), 0, s.screen.Height()-1)
	s.screen.DrawHLine(0, row, s.screen.Width(), GroundChar, core.ColorGray)
}

func (s *ScreenSurface) DrawPlayer(box core.RectF) {
	s.screen.DrawRect(s.project(box), PlayerChar, core.ColorBrightYellow)
}

func (s *ScreenSurface) DrawEnemy(box core.RectF) {
	s.screen.DrawRect(s.project(box), EnemyChar, core.ColorBrightGreen)
}

func (s *ScreenSurface) DrawEffect(box core.RectF) {
	s.screen.DrawRect(s.project(box), EffectChar, core.ColorYellow)
}

// DrawBanner draws the text in a box in the middle of the screen.
func (s *ScreenSurface) DrawBanner(text string) {
	w := s.screen.Width()
	h := s.screen.Height()

	boxW := len([]rune(text)) + 6
	boxH := 3
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	s.screen.DrawRect(box, ' ', core.ColorDefault)
	s.screen.DrawBox(box, core.ColorRed)
	s.screen.DrawTextCentered(box.Y+1, text, core.ColorBrightRed)
}
