package grid

import (
	"strconv"

	"bioscene/internal/core"
)

// Parameters reports the lattice layout and the live charge picture.
func (g *Grid) Parameters() core.ParameterSnapshot {
	p := g.cfg.Params
	var total, peak float64
	for _, n := range g.nodes {
		total += n.Charge
		peak = max(peak, n.Charge)
	}
	mean := 0.0
	if len(g.nodes) > 0 {
		mean = total / float64(len(g.nodes))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("cols", "Columns", g.lattice.Cols),
				intParam("rows", "Rows", g.lattice.Rows),
				intParam("nodes", "Nodes", len(g.nodes)),
				intParam("links", "Links", len(g.links)),
			},
		},
		{
			Name: "Charge",
			Params: []core.Parameter{
				floatParam("charge_mean", "Mean charge", mean),
				floatParam("charge_peak", "Peak charge", peak),
				intParam("visible", "Visible links", g.VisibleLinkCount()),
				floatParam("charge_amount", "Pointer charge", p.ChargeAmount),
				floatParam("decay", "Decay", p.Decay),
				floatParam("impulse_chance", "Impulse chance", p.ImpulseChance),
			},
		},
	}}
}

// ParameterControls lists the charge tuning the HUD may adjust.
func (g *Grid) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "charge_amount", Label: "Pointer charge", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "decay", Label: "Decay", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.9, Max: 1, HasMin: true, HasMax: true},
		{Key: "impulse_chance", Label: "Impulse", Type: core.ParamTypeFloat, Step: 0.00001, Min: 0, Max: 0.01, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates one of the charge controls.
func (g *Grid) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "charge_amount":
		g.cfg.Params.ChargeAmount = value
	case "decay":
		g.cfg.Params.Decay = value
	case "impulse_chance":
		g.cfg.Params.ImpulseChance = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
