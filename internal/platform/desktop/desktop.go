// Package desktop provides an Ebiten window frontend for stomp.
// Unlike a terminal, Ebiten reports real key releases, so key events are
// forwarded to the loop one to one.
package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/tui-stomp/internal/core"
	"github.com/vovakirdan/tui-stomp/internal/game"
	"github.com/vovakirdan/tui-stomp/internal/platform"
)

// Palette
var (
	colorBackground = color.RGBA{R: 0x1b, G: 0x1e, B: 0x2b, A: 0xff}
	colorGround     = color.RGBA{R: 0x5c, G: 0x63, B: 0x70, A: 0xff}
	colorPlayer     = color.RGBA{R: 0xff, G: 0xd1, B: 0x4a, A: 0xff}
	colorEnemy      = color.RGBA{R: 0x6b, G: 0xe0, B: 0x7a, A: 0xff}
	colorEffect     = color.RGBA{R: 0xff, G: 0xf0, B: 0xa0, A: 0xff}
	colorBanner     = color.RGBA{R: 0xff, G: 0x3b, B: 0x3b, A: 0xff}
)

const bannerSize = 60

// Options configures the window.
type Options struct {
	Title    string
	Scale    float64
	TickRate int
	Logger   *log.Logger
}

// Window implements ebiten.Game around a stomp loop. Update runs one frame
// into a display list; Draw replays the latest list onto the window.
type Window struct {
	loop    *game.Loop
	frame   game.DisplayList
	surface imageSurface
	keys    []ebiten.Key
	logger  *log.Logger
}

// New creates a window for loop, whose world was built for cfg.
func New(loop *game.Loop, cfg core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load banner font: %w", err)
	}

	return &Window{
		loop: loop,
		surface: imageSurface{
			width:  float32(cfg.CanvasW),
			height: float32(cfg.CanvasH),
			face:   &text.GoTextFace{Source: src, Size: bannerSize},
		},
		logger: logger,
	}, nil
}

// Update forwards key transitions and runs one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.loop.Stop()
	}
	if w.loop.Stopped() {
		w.logger.Info("window closed", "frame", w.loop.Frame())
		return ebiten.Termination
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if key, ok := keyFor(k); ok {
			w.loop.KeyDown(key)
		}
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		if key, ok := keyFor(k); ok {
			w.loop.KeyUp(key)
		}
	}

	res := w.loop.Tick(time.Now(), &w.frame)
	platform.LogStep(w.logger, res)
	return nil
}

// Draw replays the last frame onto the window.
func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.img = screen
	w.frame.Replay(&w.surface)
}

// Layout fixes the logical screen to the canvas size.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.surface.width), int(w.surface.height)
}

// keyFor maps Ebiten keys onto simulation keys.
func keyFor(k ebiten.Key) (core.Key, bool) {
	switch k {
	case ebiten.KeyArrowRight:
		return core.KeyArrowRight, true
	case ebiten.KeyArrowLeft:
		return core.KeyArrowLeft, true
	case ebiten.KeyArrowUp:
		return core.KeyArrowUp, true
	case ebiten.KeySpace:
		return core.KeySpace, true
	}
	return "", false
}

// Run opens the window and blocks until it is closed or the loop is stopped.
func Run(loop *game.Loop, cfg core.RuntimeConfig, opts Options) error {
	win, err := New(loop, cfg, opts.Logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(float64(cfg.CanvasW)*opts.Scale), int(float64(cfg.CanvasH)*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// imageSurface draws onto an Ebiten image.
type imageSurface struct {
	img    *ebiten.Image
	width  float32
	height float32
	face   *text.GoTextFace
}

func (s *imageSurface) Clear() {
	s.img.Fill(colorBackground)

	floor := s.height - game.GroundMargin + game.PlayerHeight
	vector.FillRect(s.img, 0, floor, s.width, s.height-floor, colorGround, false)
}

func (s *imageSurface) fill(box core.RectF, clr color.Color) {
	vector.FillRect(s.img, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), clr, false)
}

func (s *imageSurface) DrawPlayer(box core.RectF) {
	s.fill(box, colorPlayer)
}

func (s *imageSurface) DrawEnemy(box core.RectF) {
	s.fill(box, colorEnemy)
}

func (s *imageSurface) DrawEffect(box core.RectF) {
	r := float32(box.W) / 2
	vector.DrawFilledCircle(s.img, float32(box.X)+r, float32(box.Y)+r, r, colorEffect, true)
}

func (s *imageSurface) DrawBanner(msg string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s.width)/2, float64(s.height)/2)
	op.ColorScale.ScaleWithColor(colorBanner)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.img, msg, s.face, op)
}
