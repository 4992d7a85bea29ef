package telemetry

import (
	"runtime"
	"sync"

	"bioscene/internal/scenes/forest"
)

// SweepResult summarises one forest run for a fixed set of metrics.
type SweepResult struct {
	Index         int
	Metrics       forest.Metrics
	Plants        int
	Seeds         int
	PeakParticles int
	MeanHeight    float64
	MaxHeight     float64
}

// SweepForest runs one forest per metrics case on a pool of workers and
// returns the results in case order. Each run uses base with the case as its
// initial metrics, so runs are independent and deterministic.
func SweepForest(base forest.Config, cases []forest.Metrics, frames, workers int) []SweepResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	type job struct {
		index   int
		metrics forest.Metrics
	}
	jobs := make(chan job)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runSweepCase(base, j.index, j.metrics, frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, m := range cases {
			jobs <- job{index: i, metrics: m}
		}
		close(jobs)
	}()

	out := make([]SweepResult, len(cases))
	for res := range results {
		out[res.Index] = res
	}
	return out
}

func runSweepCase(base forest.Config, index int, m forest.Metrics, frames int) SweepResult {
	cfg := base
	cfg.Initial = m
	f := forest.NewWithConfig(cfg)

	res := SweepResult{Index: index, Metrics: m}
	for i := 0; i < frames; i++ {
		f.Step()
		res.PeakParticles = max(res.PeakParticles, len(f.Particles()))
	}
	s := SampleForest(f, frames, nil)
	res.Plants = s.Plants
	res.Seeds = s.Seeds
	res.MeanHeight = s.MeanHeight
	res.MaxHeight = s.MaxHeight
	return res
}

// MetricGrid expands the cartesian product of the given values into sweep
// cases.
func MetricGrid(co2, kwh []float64, gpus []int, hours []float64) []forest.Metrics {
	var out []forest.Metrics
	for _, c := range co2 {
		for _, k := range kwh {
			for _, g := range gpus {
				for _, h := range hours {
					out = append(out, forest.Metrics{CO2: c, KWh: k, GPUs: g, Hours: h})
				}
			}
		}
	}
	return out
}
