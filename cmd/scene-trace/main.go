package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bioscene/internal/config"
	"bioscene/internal/core"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
	"bioscene/internal/telemetry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#166534", Dark: "#8FD14F"})

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	valueStyle = lipgloss.NewStyle().
			Width(10).
			Align(lipgloss.Right)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4C7A28")).
			Padding(0, 1)
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var overrides kvList
	flag.Var(&overrides, "set", "scene factory override key=value (repeatable)")
	sceneName := flag.String("scene", "forest", "scene to trace: forest, grid or sweep")
	configPath := flag.String("config", "", "YAML file layered over the built-in defaults")
	frames := flag.Int("frames", 0, "frames to simulate (0 uses the config value)")
	seed := flag.Int64("seed", 0, "seed override (0 keeps the config seed)")
	csvPath := flag.String("csv", "", "write per-frame samples to this CSV file")
	co2 := flag.Float64("co2", -1, "initial CO2 kg (negative keeps the config value)")
	kwh := flag.Float64("kwh", -1, "initial kWh (negative keeps the config value)")
	gpus := flag.Int("gpus", 0, "initial GPU count (0 keeps the config value)")
	hours := flag.Float64("hours", -1, "initial hours (negative keeps the config value)")
	pulse := flag.Int("pulse", 60, "grid: frame at which to pulse the centre (0 disables)")
	workers := flag.Int("workers", runtime.NumCPU(), "sweep: parallel scenario runs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *frames > 0 {
		cfg.Trace.Frames = *frames
	}
	if *seed != 0 {
		cfg.Forest.Seed = *seed
		cfg.Grid.Seed = *seed
	}
	if *co2 >= 0 {
		cfg.Forest.Initial.CO2 = *co2
	}
	if *kwh >= 0 {
		cfg.Forest.Initial.KWh = *kwh
	}
	if *gpus > 0 {
		cfg.Forest.Initial.GPUs = *gpus
	}
	if *hours >= 0 {
		cfg.Forest.Initial.Hours = *hours
	}

	var csvFile *os.File
	if *csvPath != "" {
		csvFile, err = os.Create(*csvPath)
		if err != nil {
			log.Fatalf("create csv: %v", err)
		}
		defer csvFile.Close()
	}

	extra, err := parseOverrides(overrides)
	if err != nil {
		log.Fatalf("-set: %v", err)
	}

	if *sceneName == "sweep" {
		sweepForest(cfg, *workers)
		return
	}
	scene, err := buildScene(*sceneName, cfg, extra)
	if err != nil {
		log.Fatal(err)
	}
	switch s := scene.(type) {
	case *forest.Forest:
		err = traceForest(s, cfg, csvFile)
	case *grid.Grid:
		err = traceGrid(s, cfg, *pulse, csvFile)
	default:
		err = fmt.Errorf("no tracer for scene %q", scene.Name())
	}
	if err != nil {
		log.Fatalf("trace %s: %v", *sceneName, err)
	}
}

// buildScene constructs the named scene through the registry. Its factory
// arguments come from the loaded config, then the -set overrides.
func buildScene(name string, cfg *config.Config, extra map[string]string) (core.Scene, error) {
	factory, ok := core.Scenes()[name]
	if !ok {
		names := make([]string, 0, len(core.Scenes()))
		for n := range core.Scenes() {
			names = append(names, n)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("unknown scene %q (registered: %s, or sweep)", name, strings.Join(names, ", "))
	}
	var args map[string]string
	switch name {
	case "forest":
		args = forestArgs(cfg.Forest)
	case "grid":
		args = gridArgs(cfg.Grid)
	default:
		args = map[string]string{}
	}
	for k, v := range extra {
		args[k] = v
	}
	return factory(args), nil
}

func forestArgs(c forest.Config) map[string]string {
	return map[string]string{
		"w":             strconv.Itoa(c.Width),
		"h":             strconv.Itoa(c.Height),
		"seed":          strconv.FormatInt(c.Seed, 10),
		"co2":           formatArg(c.Initial.CO2),
		"kwh":           formatArg(c.Initial.KWh),
		"gpus":          strconv.Itoa(c.Initial.GPUs),
		"hours":         formatArg(c.Initial.Hours),
		"spawn_chance":  formatArg(c.Params.SpawnChance),
		"max_particles": strconv.Itoa(c.Params.MaxParticles),
		"max_plants":    strconv.Itoa(c.Params.MaxPlants),
	}
}

func gridArgs(c grid.Config) map[string]string {
	return map[string]string{
		"w":              strconv.Itoa(c.Width),
		"h":              strconv.Itoa(c.Height),
		"seed":           strconv.FormatInt(c.Seed, 10),
		"spacing":        formatArg(c.Params.Spacing),
		"jitter":         formatArg(c.Params.Jitter),
		"impulse_chance": formatArg(c.Params.ImpulseChance),
		"decay":          formatArg(c.Params.Decay),
	}
}

func formatArg(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseOverrides(list []string) (map[string]string, error) {
	out := make(map[string]string, len(list))
	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", kv)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

func traceForest(f *forest.Forest, cfg *config.Config, csvFile *os.File) error {
	size := f.Size()
	log.Printf("tracing forest %dx%d for %d frames", size.W, size.H, cfg.Trace.Frames)
	samples, err := telemetry.TraceForest(f, cfg.Trace.Frames, cfg.Trace.SampleEvery)
	if err != nil {
		return err
	}
	if csvFile != nil {
		if err := telemetry.NewCSVWriter[telemetry.ForestSample](csvFile).Write(samples...); err != nil {
			return err
		}
	}
	m := f.Metrics()
	title := fmt.Sprintf("forest  co2=%.2f kwh=%.2f gpus=%d hours=%.1f", m.CO2, m.KWh, m.GPUs, m.Hours)
	fmt.Println(renderSummaries(title, telemetry.ForestSummaries(samples)))
	return nil
}

func traceGrid(g *grid.Grid, cfg *config.Config, pulseFrame int, csvFile *os.File) error {
	size := g.Size()
	var pulses []telemetry.Pulse
	if pulseFrame > 0 {
		pulses = append(pulses, telemetry.Pulse{
			Frame: pulseFrame,
			X:     float64(size.W) / 2,
			Y:     float64(size.H) / 2,
		})
	}
	log.Printf("tracing grid %dx%d for %d frames", size.W, size.H, cfg.Trace.Frames)
	samples, err := telemetry.TraceGrid(g, cfg.Trace.Frames, cfg.Trace.SampleEvery, pulses)
	if err != nil {
		return err
	}
	if csvFile != nil {
		if err := telemetry.NewCSVWriter[telemetry.GridSample](csvFile).Write(samples...); err != nil {
			return err
		}
	}
	title := fmt.Sprintf("grid  %d nodes, %d links", len(g.Nodes()), len(g.Links()))
	fmt.Println(renderSummaries(title, telemetry.GridSummaries(samples)))
	return nil
}

func sweepForest(cfg *config.Config, workers int) {
	cases := telemetry.MetricGrid(
		[]float64{0, 10, 50, 200},
		[]float64{0, 250, 500},
		[]int{1, 4},
		[]float64{0, 75, 150},
	)
	log.Printf("sweeping %d metric cases (%d workers, %d frames)", len(cases), workers, cfg.Trace.Frames)
	results := telemetry.SweepForest(cfg.Forest, cases, cfg.Trace.Frames, workers)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s %6s %4s %6s │ %6s %5s %9s %8s", "co2", "kwh", "gpu", "hours", "plants", "seeds", "particles", "height")))
	for _, r := range results {
		m := r.Metrics
		fmt.Fprintf(&b, "\n%8.1f %6.0f %4d %6.0f │ %6d %5d %9d %8.1f",
			m.CO2, m.KWh, m.GPUs, m.Hours, r.Plants, r.Seeds, r.PeakParticles, r.MeanHeight)
	}
	fmt.Println(boxStyle.Render(titleStyle.Render("forest sweep") + "\n" + b.String()))
}

func renderSummaries(title string, summaries []telemetry.Summary) string {
	rows := []string{
		titleStyle.Render(title),
		labelStyle.Render("") + headerStyle.Render(row("mean", "std", "min", "p50", "p90", "max")),
	}
	for _, s := range summaries {
		rows = append(rows, labelStyle.Render(s.Name)+row(
			num(s.Mean), num(s.Std), num(s.Min), num(s.P50), num(s.P90), num(s.Max),
		))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(cells ...string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = valueStyle.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func num(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
