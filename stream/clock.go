package stream

import (
	"sync"
	"time"
)

// A FrameClock schedules single future invocations of a frame callback,
// supplying each invocation with a monotonically increasing millisecond
// timestamp. A pending request can be cancelled, after which the callback
// will not run.
type FrameClock interface {
	Request(callback func(nowMs int64)) uint64
	Cancel(id uint64)
}

// A TickerClock is a FrameClock that delivers callbacks one frame
// interval after they are requested, with timestamps measured from its
// creation.
type TickerClock struct {
	interval time.Duration
	epoch    time.Time

	mutex  sync.Mutex
	nextID uint64
	timers map[uint64]*time.Timer
}

// NewTickerClock creates a TickerClock with the given frame interval.
func NewTickerClock(interval time.Duration) *TickerClock {
	c := new(TickerClock)
	c.interval = interval
	c.epoch = time.Now()
	c.timers = make(map[uint64]*time.Timer)
	return c
}

// Request schedules callback to run after one frame interval.
func (c *TickerClock) Request(callback func(nowMs int64)) uint64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.nextID++
	id := c.nextID
	c.timers[id] = time.AfterFunc(c.interval, func() {
		c.mutex.Lock()
		delete(c.timers, id)
		c.mutex.Unlock()
		callback(time.Since(c.epoch).Milliseconds())
	})

	return id
}

// Cancel drops a pending request. Cancelling an id that already fired is
// a no-op.
func (c *TickerClock) Cancel(id uint64) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
}
