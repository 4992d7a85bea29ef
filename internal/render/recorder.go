package render

import "image/color"

// CallKind identifies a recorded Canvas call.
type CallKind uint8

const (
	CallClear CallKind = iota
	CallFill
	CallFillGradient
	CallStroke
	CallFillCircle
)

// Call is one recorded Canvas operation.
type Call struct {
	Kind     CallKind
	Path     *Path
	Color    color.NRGBA
	Gradient LinearGradient
	Style    StrokeStyle

	CX, CY, R float64
}

// Recorder is a Canvas that keeps every call in order. It backs headless
// tests and the trace tool's draw-call counters.
type Recorder struct {
	Calls []Call
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns the number of calls of kind k.
func (r *Recorder) Count(k CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Kind: CallClear})
}

func (r *Recorder) Fill(p *Path, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallFill, Path: p, Color: c})
}

func (r *Recorder) FillGradient(p *Path, g LinearGradient) {
	r.Calls = append(r.Calls, Call{Kind: CallFillGradient, Path: p, Gradient: g})
}

func (r *Recorder) Stroke(p *Path, style StrokeStyle, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallStroke, Path: p, Style: style, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallFillCircle, CX: cx, CY: cy, R: radius, Color: c})
}
