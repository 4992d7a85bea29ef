package telemetry

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of one sampled column.
type Summary struct {
	Name string
	N    int
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	P50  float64
	P90  float64
}

// Summarize computes the distribution of values. An empty input yields a
// zero summary carrying only the name.
func Summarize(name string, values []float64) Summary {
	s := Summary{Name: name, N: len(values)}
	if len(values) == 0 {
		return s
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return s
}

// Column extracts one float column from a sample slice.
func Column[T any](samples []T, get func(T) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = get(s)
	}
	return out
}

// ForestSummaries summarises the columns of a forest trace.
func ForestSummaries(samples []ForestSample) []Summary {
	return []Summary{
		Summarize("plants", Column(samples, func(s ForestSample) float64 { return float64(s.Plants) })),
		Summarize("seeds", Column(samples, func(s ForestSample) float64 { return float64(s.Seeds) })),
		Summarize("particles", Column(samples, func(s ForestSample) float64 { return float64(s.Particles) })),
		Summarize("mean_height", Column(samples, func(s ForestSample) float64 { return s.MeanHeight })),
		Summarize("draw_calls", Column(samples, func(s ForestSample) float64 { return float64(s.DrawCalls) })),
	}
}

// GridSummaries summarises the columns of a grid trace.
func GridSummaries(samples []GridSample) []Summary {
	return []Summary{
		Summarize("visible_links", Column(samples, func(s GridSample) float64 { return float64(s.Visible) })),
		Summarize("strokes", Column(samples, func(s GridSample) float64 { return float64(s.Strokes) })),
		Summarize("mean_charge", Column(samples, func(s GridSample) float64 { return s.MeanCharge })),
		Summarize("peak_charge", Column(samples, func(s GridSample) float64 { return s.PeakCharge })),
		Summarize("draw_calls", Column(samples, func(s GridSample) float64 { return float64(s.DrawCalls) })),
	}
}
