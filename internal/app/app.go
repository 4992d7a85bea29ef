//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"bioscene/internal/config"
	"bioscene/internal/core"
	"bioscene/internal/render"
	"bioscene/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 10, G: 18, B: 8, A: 255}

var overlayKeys = map[ebiten.Key]ui.Layer{
	ebiten.KeyDigit1: ui.LayerLinks,
	ebiten.KeyDigit2: ui.LayerHitBoxes,
	ebiten.KeyDigit3: ui.LayerCharge,
	ebiten.KeyDigit4: ui.LayerInfluence,
}

// Game adapts the scene controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	hud     *ui.HUD
	overlay *ui.Overlay

	gridSurface   *render.Surface
	forestSurface *render.Surface

	seed     int64
	hovering bool
	lastX    int
	lastY    int

	touches []ebiten.TouchID
}

// New constructs a Game for cfg with a control panel hudWidth pixels wide.
// The R key resets with seed; 0 keeps each scene's configured seed.
func New(cfg *config.Config, hudWidth int, seed int64) *Game {
	ctl := NewController(cfg)
	return &Game{
		ctl:     ctl,
		hud:     ui.NewHUD(hudWidth, ctl.Forest, ctl.Grid),
		overlay: ui.NewOverlay(),
		seed:    seed,
	}
}

// Controller exposes the scene controller so hosts can push metric updates.
func (g *Game) Controller() *Controller { return g.ctl }

// Reset reinitializes both scenes with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.ctl.Reset(seed)
}

// Update handles per-frame input and advances the scenes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctl.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.Loop.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		_ = g.ctl.Loop.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for key, layer := range overlayKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.overlay.Toggle(layer)
		}
	}

	size := g.ctl.Size()
	hudHit := g.hud.Update(size.W)
	g.pointer(size)
	if !hudHit && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if inside(size, mx, my) {
			_ = g.ctl.Press(float64(mx), float64(my))
		}
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		if inside(size, tx, ty) {
			_ = g.ctl.PointerMove(float64(tx), float64(ty))
			_ = g.ctl.Press(float64(tx), float64(ty))
		}
	}

	if err := g.ctl.Tick(); errors.Is(err, core.ErrLoopStopped) {
		return ebiten.Termination
	}
	return nil
}

// pointer forwards cursor motion and reports the cursor leaving the scene
// area once.
func (g *Game) pointer(size core.Size) {
	mx, my := ebiten.CursorPosition()
	if !inside(size, mx, my) {
		if g.hovering {
			g.hovering = false
			_ = g.ctl.PointerLeave()
		}
		return
	}
	if g.hovering && mx == g.lastX && my == g.lastY {
		return
	}
	g.hovering = true
	g.lastX, g.lastY = mx, my
	_ = g.ctl.PointerMove(float64(mx), float64(my))
}

// Draw renders the grid, the forest panel over its bottom edge, the tooltip
// and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	size := g.ctl.Size()
	panelY := g.ctl.PanelY()
	g.gridSurface = ensureSurface(g.gridSurface, size.W, size.H)
	g.forestSurface = ensureSurface(g.forestSurface, size.W, size.H-panelY)

	g.ctl.Grid.Draw(g.gridSurface)
	g.overlay.DrawGrid(g.gridSurface, g.ctl.Grid)
	screen.DrawImage(g.gridSurface.Image(), nil)

	view := g.ctl.Tooltip.View()
	g.ctl.Forest.Draw(g.forestSurface)
	g.overlay.DrawForest(g.forestSurface, g.ctl.Forest)
	ui.DrawTooltipBox(g.forestSurface, view)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(panelY))
	screen.DrawImage(g.forestSurface.Image(), op)
	ui.DrawTooltipText(screen, view, 0, float64(panelY))

	g.hud.Draw(screen, size.W, size.H)
}

// Layout gives the scenes everything left of the control panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	sceneW := max(outsideWidth-g.hud.Width(), 1)
	g.ctl.Resize(sceneW, max(outsideHeight, 1))
	return outsideWidth, outsideHeight
}

func ensureSurface(s *render.Surface, w, h int) *render.Surface {
	w, h = max(w, 1), max(h, 1)
	if s != nil {
		if sw, sh := s.Size(); sw == w && sh == h {
			return s
		}
	}
	return render.NewSurface(w, h)
}

func inside(size core.Size, x, y int) bool {
	return x >= 0 && y >= 0 && x < size.W && y < size.H
}
