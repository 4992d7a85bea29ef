// Package tooltip locates the plant under the pointer and keeps the fading
// overlay that describes it.
package tooltip

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"bioscene/internal/scenes/forest"
)

// Source is the read-only view of a forest the tooltip needs.
type Source interface {
	Plants() []forest.Plant
	Metrics() forest.Metrics
}

// Config sizes the overlay box and tunes its fade.
type Config struct {
	BoxWidth  float64 `yaml:"box_width"`
	BoxHeight float64 `yaml:"box_height"`
	OffsetX   float64 `yaml:"offset_x"`
	OffsetY   float64 `yaml:"offset_y"`
	Margin    float64 `yaml:"margin"`

	FPS       int     `yaml:"fps"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// DefaultConfig returns the standard overlay layout.
func DefaultConfig() Config {
	return Config{
		BoxWidth:  200,
		BoxHeight: 80,
		OffsetX:   10,
		OffsetY:   90,
		Margin:    10,
		FPS:       60,
		Frequency: 20,
		Damping:   1,
	}
}

// Title heads every overlay.
const Title = "Tree Impact"

// settle is the distance under which the fade snaps to its target.
const settle = 1e-3

// View is the renderable state of the overlay.
type View struct {
	Visible bool
	Opacity float64
	X, Y    float64
	W, H    float64
	Index   int
	Lines   []string
}

// Tooltip follows the pointer over a forest container.
type Tooltip struct {
	cfg  Config
	src  Source
	w, h float64

	spring   harmonica.Spring
	opacity  float64
	velocity float64
	target   float64

	x, y  float64
	index int
	lines []string
}

// New returns a hidden tooltip reading from src inside a w*h container.
func New(src Source, w, h int) *Tooltip {
	return NewWithConfig(src, w, h, DefaultConfig())
}

// NewWithConfig is New with explicit layout and fade settings.
func NewWithConfig(src Source, w, h int, cfg Config) *Tooltip {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	t := &Tooltip{
		cfg:    cfg,
		src:    src,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		index:  -1,
	}
	t.SetViewport(w, h)
	return t
}

// SetViewport updates the container size used for clamping.
func (t *Tooltip) SetViewport(w, h int) {
	t.w = math.Max(float64(w), 0)
	t.h = math.Max(float64(h), 0)
}

// Locate returns the index of the first plant, in scene order, whose hit box
// contains (x, y): within twice its width horizontally and strictly inside its
// current height above the baseline.
func (t *Tooltip) Locate(x, y float64) (int, bool) {
	for i, pl := range t.src.Plants() {
		dy := pl.Y - y
		if math.Abs(x-pl.X) <= pl.Width*2 && dy > 0 && dy < pl.CurrentHeight {
			return i, true
		}
	}
	return -1, false
}

// Display fills the overlay for plant index near (x, y) and fades it in.
func (t *Tooltip) Display(index int, x, y float64) {
	count := len(t.src.Plants())
	m := t.src.Metrics()
	co2, kwh := Shares(m, count)

	t.index = index
	t.lines = []string{
		Title,
		fmt.Sprintf("%.2f kg CO2 absorbed", co2),
		fmt.Sprintf("%.2f kWh clean energy", kwh),
	}
	t.x, t.y = t.position(x, y)
	t.target = 1
}

// Hide fades the overlay out. Content stays until the fade completes.
func (t *Tooltip) Hide() {
	t.target = 0
}

// Hover is the pointer-move handler: it shows the overlay for the plant under
// (x, y) or hides it when there is none.
func (t *Tooltip) Hover(x, y float64) bool {
	i, ok := t.Locate(x, y)
	if !ok {
		t.Hide()
		return false
	}
	t.Display(i, x, y)
	return true
}

// Update advances the fade by one frame.
func (t *Tooltip) Update() {
	if t.opacity == t.target && t.velocity == 0 {
		return
	}
	t.opacity, t.velocity = t.spring.Update(t.opacity, t.velocity, t.target)
	if math.Abs(t.opacity-t.target) < settle && math.Abs(t.velocity) < settle {
		t.opacity, t.velocity = t.target, 0
	}
	t.opacity = math.Min(math.Max(t.opacity, 0), 1)
	if t.opacity == 0 && t.target == 0 {
		t.index = -1
		t.lines = nil
	}
}

// View returns what the host should draw this frame.
func (t *Tooltip) View() View {
	return View{
		Visible: t.opacity > 0,
		Opacity: t.opacity,
		X:       t.x,
		Y:       t.y,
		W:       t.cfg.BoxWidth,
		H:       t.cfg.BoxHeight,
		Index:   t.index,
		Lines:   append([]string(nil), t.lines...),
	}
}

// Shares splits the forest totals evenly across count plants. The divisor is
// floored at 1.
func Shares(m forest.Metrics, count int) (co2, kwh float64) {
	n := float64(max(count, 1))
	return m.CO2 / n, m.KWh / n
}

func (t *Tooltip) position(x, y float64) (float64, float64) {
	c := t.cfg
	left := math.Min(x+c.OffsetX, t.w-c.BoxWidth)
	top := math.Max(y-c.OffsetY, c.Margin)
	left = math.Min(math.Max(left, 0), math.Max(t.w-c.BoxWidth, 0))
	top = math.Min(math.Max(top, 0), math.Max(t.h-c.BoxHeight, 0))
	return left, top
}
