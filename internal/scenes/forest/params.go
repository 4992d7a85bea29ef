package forest

import (
	"strconv"

	"bioscene/internal/core"
)

// Parameters reports the current metric inputs and scene population.
func (f *Forest) Parameters() core.ParameterSnapshot {
	m := f.metrics
	seeds := 0
	for _, pl := range f.plants {
		if pl.Seed {
			seeds++
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Metrics",
			Params: []core.Parameter{
				floatParam("co2", "CO2 (kg)", m.CO2),
				floatParam("kwh", "Energy (kWh)", m.KWh),
				intParam("gpus", "GPUs", m.GPUs),
				floatParam("hours", "Hours", m.Hours),
			},
		},
		{
			Name: "Forest",
			Params: []core.Parameter{
				intParam("plants", "Plants", len(f.plants)),
				intParam("seeds", "Seeds", seeds),
				intParam("particles", "Particles", len(f.particles)),
				floatParam("clock", "Clock", f.clock),
			},
		},
	}}
}

// ParameterControls lists the metrics the HUD may adjust.
func (f *Forest) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "co2", Label: "CO2 kg", Type: core.ParamTypeFloat, Step: 5, Min: 0, HasMin: true},
		{Key: "kwh", Label: "kWh", Type: core.ParamTypeFloat, Step: 50, Min: 0, HasMin: true},
		{Key: "gpus", Label: "GPUs", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "hours", Label: "Hours", Type: core.ParamTypeFloat, Step: 10, Min: 0, HasMin: true},
	}
}

// SetFloatParameter routes a HUD change through UpdateValues.
func (f *Forest) SetFloatParameter(key string, value float64) bool {
	m := f.metrics
	switch key {
	case "co2":
		m.CO2 = value
	case "kwh":
		m.KWh = value
	case "hours":
		m.Hours = value
	default:
		return false
	}
	f.UpdateValues(m.CO2, m.KWh, m.GPUs, m.Hours)
	return true
}

// SetIntParameter routes a HUD change through UpdateValues.
func (f *Forest) SetIntParameter(key string, value int) bool {
	if key != "gpus" {
		return false
	}
	m := f.metrics
	f.UpdateValues(m.CO2, m.KWh, value, m.Hours)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
