package oversample

import (
	"sync"
	"sync/atomic"
)

// Controller owns the active oversampling chain. The render thread reads it
// with [Controller.Acquire]; control code replaces it with
// [Controller.Reconfigure].
type Controller struct {
	mu     sync.Mutex
	active atomic.Pointer[Chain]
}

// NewController returns a controller without an active chain.
func NewController() *Controller {
	return &Controller{}
}

// Reconfigure builds a chain for ratio and blockSize and publishes it. On
// error the previously active chain stays in place.
func (c *Controller) Reconfigure(ratio, blockSize int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := NewChain(ratio, blockSize)
	if err != nil {
		return err
	}

	c.active.Store(next)

	return nil
}

// Acquire returns the active chain, or nil before the first successful
// Reconfigure. The returned chain stays valid for the caller even if it is
// replaced concurrently.
func (c *Controller) Acquire() *Chain {
	return c.active.Load()
}

// Ratio returns the active ratio, or 0 when unconfigured.
func (c *Controller) Ratio() int {
	if ch := c.active.Load(); ch != nil {
		return ch.Ratio()
	}

	return 0
}

// Latency returns the active chain's latency in base-rate samples.
func (c *Controller) Latency() int {
	if ch := c.active.Load(); ch != nil {
		return ch.Latency()
	}

	return 0
}
