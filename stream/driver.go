package stream

import "sync"

// A Driver runs one continuous animation cycle: once per frame it clears
// the surface, delegates drawing to its animation with the elapsed time,
// then requests the next frame from the clock. The reference timestamp is
// taken from the first frame the clock delivers after Start, so elapsed
// time begins at zero and stays monotonic for the run.
type Driver struct {
	surface    Surface
	clock      FrameClock
	animation  Animation
	afterFrame func()

	mutex   sync.Mutex
	running bool
	started bool
	startMs int64
	pending uint64
}

// NewDriver creates an instance of a Driver.
func NewDriver(surface Surface, clock FrameClock, animation Animation) *Driver {
	d := new(Driver)
	d.surface = surface
	d.clock = clock
	d.animation = animation
	return d
}

// OnFrame registers a hook invoked after each frame's draw commands have
// been issued, before the next frame is requested. Must be set before
// Start.
func (d *Driver) OnFrame(hook func()) {
	d.afterFrame = hook
}

// Start begins the animation cycle. Restarting after a Stop takes a fresh
// reference timestamp.
func (d *Driver) Start() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.running {
		return
	}
	d.running = true
	d.started = false
	d.pending = d.clock.Request(d.tick)
}

// Stop cancels the pending frame request. After Stop returns, no further
// frame is drawn and the surface is not touched again.
func (d *Driver) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.running {
		return
	}
	d.running = false
	d.clock.Cancel(d.pending)
}

func (d *Driver) tick(nowMs int64) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	// A cancelled request can still race its callback in; draw nothing.
	if !d.running {
		return
	}

	if !d.started {
		d.started = true
		d.startMs = nowMs
	}
	runtimeMs := nowMs - d.startMs

	d.surface.Clear()
	d.animation.DrawFrame(d.surface, runtimeMs)
	if d.afterFrame != nil {
		d.afterFrame()
	}

	d.pending = d.clock.Request(d.tick)
}
