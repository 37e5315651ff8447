package stream

import (
	"log"
	"sync"
	"time"
)

// A Controller is an Animation that cycles through a set of animations.
// Stroke command streams cannot be blended the way pixel frames can, so
// the switch between animations is immediate.
type Controller struct {
	cycleTime  time.Duration
	animations []Animation
	done       chan struct{}

	mutex   sync.Mutex
	current int
}

// NewController creates an instance of a Controller.
func NewController(cycleTime time.Duration, animations ...Animation) *Controller {
	c := new(Controller)
	c.cycleTime = cycleTime
	c.animations = animations
	c.done = make(chan struct{})
	return c
}

// DrawFrame delegates to the current animation.
func (c *Controller) DrawFrame(s Surface, runtimeMs int64) {
	c.mutex.Lock()
	animation := c.animations[c.current]
	c.mutex.Unlock()

	animation.DrawFrame(s, runtimeMs)
}

func (c *Controller) cycleAnimation() {
	c.mutex.Lock()
	c.current = (c.current + 1) % len(c.animations)
	current := c.current
	c.mutex.Unlock()

	log.Printf("Switched to animation %d of %d", current+1, len(c.animations))
}

// Run causes the Controller to cycle through animations until Stop is
// called.
func (c *Controller) Run() {
	cycleTimer := time.NewTicker(c.cycleTime)
	defer cycleTimer.Stop()
	for {
		select {
		case <-cycleTimer.C:
			c.cycleAnimation()
		case <-c.done:
			return
		}
	}
}

// Stop ends the cycle loop.
func (c *Controller) Stop() {
	close(c.done)
}
