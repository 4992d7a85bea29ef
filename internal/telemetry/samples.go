// Package telemetry samples scene state frame by frame for the trace tool.
package telemetry

import (
	"bioscene/internal/render"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
)

// ForestSample is one row of a forest trace.
type ForestSample struct {
	Frame      int     `csv:"frame"`
	Clock      float64 `csv:"clock"`
	Plants     int     `csv:"plants"`
	Seeds      int     `csv:"seeds"`
	Particles  int     `csv:"particles"`
	MeanHeight float64 `csv:"mean_height"`
	MaxHeight  float64 `csv:"max_height"`
	Intensity  float64 `csv:"intensity"`
	DrawCalls  int     `csv:"draw_calls"`
}

// GridSample is one row of a grid trace.
type GridSample struct {
	Frame      int     `csv:"frame"`
	Nodes      int     `csv:"nodes"`
	Links      int     `csv:"links"`
	Visible    int     `csv:"visible_links"`
	Strokes    int     `csv:"strokes"`
	MeanCharge float64 `csv:"mean_charge"`
	PeakCharge float64 `csv:"peak_charge"`
	DrawCalls  int     `csv:"draw_calls"`
}

// SampleForest captures f after frame. rec holds the calls of the frame's
// Draw, or nil when drawing was skipped.
func SampleForest(f *forest.Forest, frame int, rec *render.Recorder) ForestSample {
	s := ForestSample{Frame: frame, Clock: f.Clock(), Particles: len(f.Particles())}
	plants := f.Plants()
	s.Plants = len(plants)
	var total float64
	for _, pl := range plants {
		if pl.Seed {
			s.Seeds++
		}
		h := pl.EasedHeight()
		total += h
		s.MaxHeight = max(s.MaxHeight, h)
		s.Intensity = pl.ColorIntensity
	}
	if len(plants) > 0 {
		s.MeanHeight = total / float64(len(plants))
	}
	if rec != nil {
		s.DrawCalls = len(rec.Calls)
	}
	return s
}

// SampleGrid captures g after frame.
func SampleGrid(g *grid.Grid, frame int, rec *render.Recorder) GridSample {
	nodes := g.Nodes()
	s := GridSample{Frame: frame, Nodes: len(nodes), Links: len(g.Links()), Visible: g.VisibleLinkCount()}
	var total float64
	for _, n := range nodes {
		total += n.Charge
		s.PeakCharge = max(s.PeakCharge, n.Charge)
	}
	if len(nodes) > 0 {
		s.MeanCharge = total / float64(len(nodes))
	}
	if rec != nil {
		s.DrawCalls = len(rec.Calls)
		s.Strokes = rec.Count(render.CallStroke)
	}
	return s
}
