//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"bioscene/internal/tooltip"
)

// DrawTooltipText writes the lines of v onto dst, shifted by the panel
// offset.
func DrawTooltipText(dst *ebiten.Image, v tooltip.View, offsetX, offsetY float64) {
	if !v.Visible {
		return
	}
	for i, line := range v.Lines {
		x, y, c := tooltipLine(v, i)
		drawText(dst, line, x+offsetX, y+offsetY, c)
	}
}
