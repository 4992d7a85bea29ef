package ui

import (
	"testing"

	"bioscene/internal/render"
	"bioscene/internal/tooltip"
)

func TestTooltipBoxHidden(t *testing.T) {
	rec := &render.Recorder{}
	DrawTooltipBox(rec, tooltip.View{W: 200, H: 80})
	if len(rec.Calls) != 0 {
		t.Fatalf("hidden tooltip should not draw, got %d calls", len(rec.Calls))
	}
}

func TestTooltipBoxFades(t *testing.T) {
	rec := &render.Recorder{}
	v := tooltip.View{Visible: true, Opacity: 0.5, X: 40, Y: 10, W: 200, H: 80}
	DrawTooltipBox(rec, v)

	if len(rec.Calls) != 2 || rec.Calls[0].Kind != render.CallFill || rec.Calls[1].Kind != render.CallStroke {
		t.Fatalf("expected fill then stroke, got %+v", rec.Calls)
	}
	if got, want := rec.Calls[0].Color.A, render.WithAlpha(tooltipFill, 0.5).A; got != want {
		t.Fatalf("fill alpha = %d, want %d", got, want)
	}
	minX, minY, maxX, maxY, ok := rec.Calls[0].Path.Bounds()
	if !ok || minX != 40 || minY != 10 || maxX != 240 || maxY != 90 {
		t.Fatalf("box bounds = (%v, %v)-(%v, %v)", minX, minY, maxX, maxY)
	}
}

func TestTooltipLineLayout(t *testing.T) {
	v := tooltip.View{Visible: true, Opacity: 1, X: 40, Y: 10}
	x0, y0, c0 := tooltipLine(v, 0)
	x2, y2, c2 := tooltipLine(v, 2)
	if x0 != 50 || y0 != 20 || x2 != 50 || y2 != 60 {
		t.Fatalf("unexpected line origins (%v, %v) and (%v, %v)", x0, y0, x2, y2)
	}
	if c0 != tooltipTitle || c2 != tooltipText {
		t.Fatalf("title and body colours should differ")
	}
}
