//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"bioscene/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// HUD renders the parameter panel to the right of the scene area. Each scene
// gets its own section of +/- controls.
type HUD struct {
	width    int
	sections []section
	panel    *ebiten.Image

	panelOffsetX int
	pixel        *ebiten.Image
}

// NewHUD constructs a HUD for the provided scenes and panel width.
func NewHUD(width int, scenes ...core.Scene) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	for _, scene := range scenes {
		h.sections = append(h.sections, newSection(scene))
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
		layoutSections(h.sections, width)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached values and handles clicks. It reports whether
// the click, if any, landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	for i := range h.sections {
		h.sections[i].refresh()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.sections {
		if h.sections[i].click(px, my) {
			break
		}
	}
	return true
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 22, G: 32, B: 18, A: 255})
	for i := range h.sections {
		h.drawSection(&h.sections[i])
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSection(s *section) {
	drawText(h.panel, s.title, panelPadding, float64(s.top), color.RGBA{R: 190, G: 225, B: 160, A: 255})
	if len(s.controls) == 0 {
		drawText(h.panel, "No adjustable parameters", panelPadding, float64(s.top+headerBaseline), color.RGBA{R: 140, G: 150, B: 140, A: 255})
		return
	}
	for i := range s.controls {
		state := &s.controls[i]
		textTop := float64(state.minusRect.Min.Y + (buttonSize-13)/2)
		drawText(h.panel, state.control.Label, panelPadding, textTop, color.RGBA{R: 220, G: 228, B: 215, A: 255})

		valueColor := color.RGBA{R: 220, G: 228, B: 215, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 140, G: 150, B: 140, A: 255}
		}
		w, _ := text.Measure(state.value, hudFace, 0)
		drawText(h.panel, state.value, float64(state.minusRect.Min.X-buttonGap)-w, textTop, valueColor)

		h.drawButton(state.minusRect, "-", s.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", s.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 56, G: 84, B: 40, A: 255}
	fg := color.RGBA{R: 235, G: 245, B: 225, A: 255}
	if !enabled {
		bg = color.RGBA{R: 34, G: 44, B: 30, A: 255}
		fg = color.RGBA{R: 120, G: 130, B: 115, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	w, th := text.Measure(label, hudFace, 0)
	x := float64(rect.Min.X) + (float64(rect.Dx())-w)/2
	y := float64(rect.Min.Y) + (float64(rect.Dy())-th)/2
	drawText(h.panel, label, x, y, fg)
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, hudFace, op)
}
