package core

import (
	"context"
	"errors"
	"sync"
	"time"
)

// LoopState enumerates the lifecycle of a Loop.
type LoopState int

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopPaused
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopPaused:
		return "paused"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var (
	// ErrLoopRunning is returned when an operation needs the loop to be idle
	// or paused.
	ErrLoopRunning = errors.New("core: loop is running")
	// ErrLoopStopped is returned once Stop has been called.
	ErrLoopStopped = errors.New("core: loop stopped")
)

// Loop drives a frame function either from a host callback (Tick) or from its
// own ticker (Run). Events queued with Post are applied before the next frame
// on whichever goroutine executes frames, so the frame function and the
// events never run concurrently.
type Loop struct {
	frame func()

	mu      sync.Mutex
	state   LoopState
	queue   []func()
	frames  uint64
	running bool
	cancel  context.CancelFunc
}

// NewLoop returns an idle loop around frame.
func NewLoop(frame func()) *Loop {
	if frame == nil {
		frame = func() {}
	}
	return &Loop{frame: frame}
}

// State reports the current lifecycle state.
func (l *Loop) State() LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Frames reports how many frames have executed.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Start moves an idle or paused loop to running.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == LoopStopped {
		return ErrLoopStopped
	}
	l.state = LoopRunning
	return nil
}

// Pause suspends frame execution. Queued events are still applied by Tick.
func (l *Loop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == LoopRunning {
		l.state = LoopPaused
	}
}

// Toggle flips between running and paused.
func (l *Loop) Toggle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.state {
	case LoopRunning:
		l.state = LoopPaused
	case LoopIdle, LoopPaused:
		l.state = LoopRunning
	}
}

// Stop terminates the loop permanently and unblocks Run.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.state = LoopStopped
	l.queue = nil
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Post queues fn to run before the next frame.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == LoopStopped {
		return ErrLoopStopped
	}
	l.queue = append(l.queue, fn)
	return nil
}

// Tick is the host callback invoked once per display frame. It applies queued
// events and executes a frame when the loop is running.
func (l *Loop) Tick() error {
	l.mu.Lock()
	state := l.state
	l.mu.Unlock()
	switch state {
	case LoopStopped:
		return ErrLoopStopped
	case LoopRunning:
		l.runFrame()
	default:
		l.drain()
	}
	return nil
}

// Step executes exactly one frame while the loop is idle or paused.
func (l *Loop) Step() error {
	switch l.State() {
	case LoopStopped:
		return ErrLoopStopped
	case LoopRunning:
		return ErrLoopRunning
	}
	l.runFrame()
	return nil
}

// StepN executes n frames while the loop is idle or paused.
func (l *Loop) StepN(n int) error {
	for i := 0; i < n; i++ {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run starts the loop and ticks it every interval until ctx is done or Stop
// is called. It returns ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	l.mu.Lock()
	if l.state == LoopStopped {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	if l.running {
		l.mu.Unlock()
		return ErrLoopRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	l.running = true
	l.cancel = cancel
	l.state = LoopRunning
	l.mu.Unlock()

	defer func() {
		cancel()
		l.mu.Lock()
		l.running = false
		l.cancel = nil
		l.mu.Unlock()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if l.State() == LoopStopped {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if err := l.Tick(); errors.Is(err, ErrLoopStopped) {
				return nil
			}
		}
	}
}

func (l *Loop) runFrame() {
	l.drain()
	l.frame()
	l.mu.Lock()
	l.frames++
	l.mu.Unlock()
}

func (l *Loop) drain() {
	l.mu.Lock()
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}
