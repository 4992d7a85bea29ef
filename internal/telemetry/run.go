package telemetry

import (
	"bioscene/internal/core"
	"bioscene/internal/render"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
)

// Pulse schedules a grid pulse before the given frame runs.
type Pulse struct {
	Frame int
	X, Y  float64
}

// TraceForest steps f for frames frames through a core.Loop and samples it
// every every frames. Each sampled frame is drawn into a Recorder so the
// sample carries its draw-call count.
func TraceForest(f *forest.Forest, frames, every int) ([]ForestSample, error) {
	every = max(every, 1)
	rec := &render.Recorder{}
	var samples []ForestSample
	frame := 0
	loop := core.NewLoop(func() {
		frame++
		f.Step()
		if frame%every == 0 {
			rec.Reset()
			f.Draw(rec)
			samples = append(samples, SampleForest(f, frame, rec))
		}
	})
	defer loop.Stop()
	if err := loop.StepN(frames); err != nil {
		return nil, err
	}
	return samples, nil
}

// TraceGrid is TraceForest for the grid. Pulses are posted to the loop so
// they land before their frame is stepped.
func TraceGrid(g *grid.Grid, frames, every int, pulses []Pulse) ([]GridSample, error) {
	every = max(every, 1)
	rec := &render.Recorder{}
	var samples []GridSample
	frame := 0
	loop := core.NewLoop(func() {
		frame++
		g.Step()
		if frame%every == 0 {
			rec.Reset()
			g.Draw(rec)
			samples = append(samples, SampleGrid(g, frame, rec))
		}
	})
	defer loop.Stop()
	for i := 1; i <= frames; i++ {
		for _, p := range pulses {
			if p.Frame == i {
				if err := loop.Post(func() { g.Pulse(p.X, p.Y) }); err != nil {
					return nil, err
				}
			}
		}
		if err := loop.Step(); err != nil {
			return nil, err
		}
	}
	return samples, nil
}
