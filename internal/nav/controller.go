package nav

import "fmt"

// Change records one effective index move.
type Change struct {
	From    int
	To      int
	Command Command
}

// Controller is the single mutation point for a session's State.
// It is not safe for concurrent use; Bubble Tea calls it from one goroutine.
type Controller struct {
	state     State
	total     int
	observers []func(Change)
}

// NewController starts at index 0 of a deck with total slides.
func NewController(total int) (*Controller, error) {
	if total <= 0 {
		return nil, fmt.Errorf("controller needs at least one slide, got %d", total)
	}
	return &Controller{total: total}, nil
}

// OnChange registers fn to run after every effective change, in registration order.
func (c *Controller) OnChange(fn func(Change)) {
	c.observers = append(c.observers, fn)
}

// Apply runs cmd. It reports false, and notifies nobody, when cmd is a no-op.
func (c *Controller) Apply(cmd Command) (Change, bool) {
	next := Step(c.state, c.total, cmd)
	if next == c.state {
		return Change{}, false
	}
	ch := Change{From: c.state.Index, To: next.Index, Command: cmd}
	c.state = next
	for _, fn := range c.observers {
		fn(ch)
	}
	return ch, true
}

// Advance is Apply(Advance).
func (c *Controller) Advance() bool {
	_, ok := c.Apply(Advance)
	return ok
}

// Retreat is Apply(Retreat).
func (c *Controller) Retreat() bool {
	_, ok := c.Apply(Retreat)
	return ok
}

func (c *Controller) State() State     { return c.state }
func (c *Controller) Index() int       { return c.state.Index }
func (c *Controller) Total() int       { return c.total }
func (c *Controller) CanAdvance() bool { return CanAdvance(c.state, c.total) }
func (c *Controller) CanRetreat() bool { return CanRetreat(c.state) }
