package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"bioscene/internal/core"
)

// section is the HUD block for one scene.
type section struct {
	title       string
	provider    core.ParameterProvider
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	controls    []controlState
	top         int
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newSection(scene core.Scene) section {
	s := section{title: buildTitle(scene)}
	if provider, ok := scene.(core.ParameterProvider); ok {
		s.provider = provider
	}
	if provider, ok := scene.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			s.controls = append(s.controls, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := scene.(core.IntParameterSetter); ok {
		s.intSetter = setter
	}
	if setter, ok := scene.(core.FloatParameterSetter); ok {
		s.floatSetter = setter
	}
	return s
}

func buildTitle(scene core.Scene) string {
	if scene == nil || scene.Name() == "" {
		return "Controls"
	}
	name := scene.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// layoutSections stacks sections vertically inside a panel of the given width
// and returns the total height used.
func layoutSections(sections []section, width int) int {
	y := panelPadding
	for si := range sections {
		s := &sections[si]
		s.top = y
		y += headerBaseline + 14
		for i := range s.controls {
			buttonY := y + (lineHeight-buttonSize)/2
			plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
			s.controls[i].top = y
			s.controls[i].minusRect = minusRect
			s.controls[i].plusRect = plusRect
			y += lineHeight
		}
		y += sectionGap
	}
	return y
}

// refresh re-reads control values from the scene's parameter snapshot.
func (s *section) refresh() {
	if s.provider == nil {
		return
	}
	snapshot := s.provider.Parameters()
	for i := range s.controls {
		state := &s.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

// click applies the button under (x, y) in panel coordinates, if any.
func (s *section) click(x, y int) bool {
	for i := range s.controls {
		state := &s.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return s.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return s.adjust(state, 1)
		}
	}
	return false
}

func (s *section) adjust(state *controlState, direction int) bool {
	if !s.canAdjust(state, direction) {
		return false
	}
	target := state.control.Nudge(state.floatValue, direction)
	switch state.control.Type {
	case core.ParamTypeInt:
		next := int(target)
		if next == state.intValue || !s.intSetter.SetIntParameter(state.control.Key, next) {
			return false
		}
		state.intValue = next
		state.floatValue = target
		state.value = strconv.Itoa(next)
	case core.ParamTypeFloat:
		if math.Abs(target-state.floatValue) < 1e-9 || !s.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	default:
		return false
	}
	return true
}

func (s *section) canAdjust(state *controlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if s.intSetter == nil {
			return false
		}
	case core.ParamTypeFloat:
		if s.floatSetter == nil {
			return false
		}
	default:
		return false
	}
	return state.control.Nudge(state.floatValue, direction) != state.floatValue
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.0001:
		precision = 5
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	sectionGap     = 10
)
