package telemetry

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"bioscene/internal/render"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
)

func TestSummarize(t *testing.T) {
	s := Summarize("x", []float64{4, 1, 3, 2})
	if s.N != 4 || s.Mean != 2.5 || s.Min != 1 || s.Max != 4 {
		t.Fatalf("summary = %+v", s)
	}
	if want := math.Sqrt(5.0 / 3.0); math.Abs(s.Std-want) > 1e-12 {
		t.Fatalf("std = %v, want %v", s.Std, want)
	}
	if s.P50 != 2 || s.P90 != 4 {
		t.Fatalf("quantiles = %v, %v", s.P50, s.P90)
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	if s := Summarize("empty", nil); s.N != 0 || s.Mean != 0 || s.Name != "empty" {
		t.Fatalf("empty summary = %+v", s)
	}
	if s := Summarize("one", []float64{7}); s.Mean != 7 || s.Std != 0 || s.P90 != 7 {
		t.Fatalf("single summary = %+v", s)
	}
}

func TestCSVWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter[GridSample](&buf)
	if err := w.Write(GridSample{Frame: 1, Nodes: 4}); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(GridSample{Frame: 2, Nodes: 4}, GridSample{Frame: 3, Nodes: 4}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %q", lines)
	}
	if lines[0] != "frame,nodes,links,visible_links,strokes,mean_charge,peak_charge,draw_calls" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "3,4,") {
		t.Fatalf("last row = %q", lines[3])
	}
	if w.Rows() != 3 {
		t.Fatalf("rows = %d", w.Rows())
	}
}

func TestSampleForest(t *testing.T) {
	f := forest.New(400, 120)
	f.UpdateValues(20, 250, 1, 150)
	for i := 0; i < 80; i++ {
		f.Step()
	}
	rec := &render.Recorder{}
	f.Draw(rec)

	s := SampleForest(f, 80, rec)
	if s.Plants != 5 || s.Frame != 80 {
		t.Fatalf("sample = %+v", s)
	}
	if s.Intensity != 0.5 {
		t.Fatalf("intensity = %v", s.Intensity)
	}
	if s.MeanHeight <= 0 || s.MaxHeight < s.MeanHeight {
		t.Fatalf("heights = %v / %v", s.MeanHeight, s.MaxHeight)
	}
	if s.DrawCalls != len(rec.Calls) {
		t.Fatalf("draw calls = %d", s.DrawCalls)
	}
}

func TestSampleGrid(t *testing.T) {
	g := grid.New(300, 200)
	g.Pulse(150, 100)
	g.Step()
	rec := &render.Recorder{}
	g.Draw(rec)

	s := SampleGrid(g, 1, rec)
	if s.Nodes != 30 || s.Visible != g.VisibleLinkCount() || s.Visible == 0 {
		t.Fatalf("sample = %+v", s)
	}
	if s.PeakCharge < s.MeanCharge || s.PeakCharge > 1 {
		t.Fatalf("charges = %v / %v", s.MeanCharge, s.PeakCharge)
	}
	if s.Strokes == 0 || s.Strokes > grid.BucketCount {
		t.Fatalf("strokes = %d", s.Strokes)
	}
	if nodraw := SampleGrid(g, 1, nil); nodraw.DrawCalls != 0 {
		t.Fatal("draw calls without a recorder")
	}
}
