package app

import (
	"bioscene/internal/config"
	"bioscene/internal/core"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
	"bioscene/internal/tooltip"
)

// Controller owns both scenes, the tooltip and the frame loop, and routes
// window-space input to each scene in its own coordinate space: the grid in
// window pixels, the forest relative to its panel along the bottom edge.
//
// Input methods queue events on the loop; they take effect on the next Tick.
// Resize and Reset act immediately and must be called from the goroutine
// that ticks the loop.
type Controller struct {
	Forest  *forest.Forest
	Grid    *grid.Grid
	Tooltip *tooltip.Tooltip
	Loop    *core.Loop

	w, h        int
	panelHeight int
}

// NewController builds the scenes described by cfg and starts the loop.
func NewController(cfg *config.Config) *Controller {
	c := &Controller{
		Forest:      forest.NewWithConfig(cfg.Forest),
		Grid:        grid.NewWithConfig(cfg.Grid),
		w:           cfg.Window.Width,
		h:           cfg.Window.Height,
		panelHeight: cfg.Window.PanelHeight,
	}
	c.Tooltip = tooltip.NewWithConfig(c.Forest, cfg.Forest.Width, cfg.Forest.Height, cfg.Tooltip)
	c.Loop = core.NewLoop(c.frame)
	c.Loop.Start()
	return c
}

func (c *Controller) frame() {
	c.Grid.Step()
	c.Forest.Step()
	c.Tooltip.Update()
}

// Tick advances one display frame.
func (c *Controller) Tick() error { return c.Loop.Tick() }

// Size returns the scene area in window pixels.
func (c *Controller) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// PanelY is the top of the forest panel in window pixels.
func (c *Controller) PanelY() int { return c.h - c.panel() }

func (c *Controller) panel() int { return max(min(c.panelHeight, c.h), 0) }

// InPanel reports whether the window point lies over the forest panel.
func (c *Controller) InPanel(x, y float64) bool {
	return x >= 0 && x < float64(c.w) && y >= float64(c.PanelY()) && y < float64(c.h)
}

// PointerMove routes a cursor or touch position given in window pixels.
func (c *Controller) PointerMove(x, y float64) error {
	inPanel := c.InPanel(x, y)
	fy := y - float64(c.PanelY())
	return c.Loop.Post(func() {
		c.Grid.PointerMove(x, y)
		if !inPanel {
			c.Forest.PointerLeave()
			c.Tooltip.Hide()
			return
		}
		c.Forest.PointerMove(x, fy)
		c.Tooltip.Hover(x, fy)
	})
}

// PointerLeave handles the cursor leaving the window.
func (c *Controller) PointerLeave() error {
	return c.Loop.Post(func() {
		c.Grid.PointerLeave()
		c.Forest.PointerLeave()
		c.Tooltip.Hide()
	})
}

// Press handles a mouse-down or touch-start at a window position.
func (c *Controller) Press(x, y float64) error {
	return c.Loop.Post(func() { c.Grid.Pulse(x, y) })
}

// UpdateValues queues new metric inputs for the forest.
func (c *Controller) UpdateValues(co2, kwh float64, gpuCount int, hours float64) error {
	return c.Loop.Post(func() { c.Forest.UpdateValues(co2, kwh, gpuCount, hours) })
}

// Resize lays both scenes out for a w*h scene area. The forest panel keeps
// its height unless the window gets shorter than it.
func (c *Controller) Resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	c.w, c.h = w, h
	panel := c.panel()
	c.Grid.Resize(w, h)
	c.Forest.Resize(w, panel)
	c.Tooltip.SetViewport(w, panel)
}

// Reset reseeds both scenes. A zero seed keeps the configured seeds.
func (c *Controller) Reset(seed int64) {
	c.Grid.Reset(seed)
	c.Forest.Reset(seed)
	c.Tooltip.Hide()
}

// Stop ends the loop; the next Tick reports core.ErrLoopStopped.
func (c *Controller) Stop() { c.Loop.Stop() }
