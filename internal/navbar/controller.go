package navbar

import (
	"context"
	"errors"
	"sync"

	"github.com/cisto/site/internal/pubsub"
)

// ErrAttached is returned when a controller is attached to a second scroll feed.
var ErrAttached = errors.New("navbar: scroll observer already attached")

// ScrollEvent is a viewport offset reported by the browser. Seq increases
// monotonically per page load; delivery order on the bus is not guaranteed.
type ScrollEvent struct {
	Offset float64 `json:"offset"`
	Seq    uint64  `json:"seq"`
}

// ScrollTopic is the bus topic carrying scroll events for one page session.
func ScrollTopic(pageID string) pubsub.Topic[ScrollEvent] {
	return pubsub.NewTopic[ScrollEvent]("viewport.scroll." + pageID)
}

// Controller is the live navigation bar of one page load. Taps are applied
// synchronously; scroll offsets arrive through an attached bus subscription.
type Controller struct {
	mu       sync.Mutex
	state    State
	version  uint64
	lastSeq  uint64
	attached bool
	changes  chan Snapshot
}

// NewController returns a controller in the initial state: top of the page,
// menu closed.
func NewController() *Controller {
	return &Controller{changes: make(chan Snapshot, 1)}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the current state with its version.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Changes delivers the newest state after each transition. Only the latest
// undelivered state is kept.
func (c *Controller) Changes() <-chan Snapshot {
	return c.changes
}

// ToggleMenu handles a tap on the menu icon.
func (c *Controller) ToggleMenu() Snapshot {
	return c.apply(State.ToggleMenu)
}

// SelectLink handles a tap on any navigation anchor.
func (c *Controller) SelectLink() Snapshot {
	return c.apply(State.SelectLink)
}

// ObserveScroll applies a scroll event unless a newer one was already seen.
// Events with Seq 0 are unsequenced and always applied.
func (c *Controller) ObserveScroll(ev ScrollEvent) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ev.Seq != 0 {
		if ev.Seq <= c.lastSeq {
			return c.snapshotLocked()
		}
		c.lastSeq = ev.Seq
	}
	c.setLocked(c.state.Scroll(ev.Offset))
	return c.snapshotLocked()
}

// Attach subscribes the controller to the page's scroll topic. The
// subscription lives until ctx is canceled, which is how a page session
// tears the observer down.
func (c *Controller) Attach(ctx context.Context, sub pubsub.Subscriber, pageID string) error {
	c.mu.Lock()
	if c.attached {
		c.mu.Unlock()
		return ErrAttached
	}
	c.attached = true
	c.mu.Unlock()

	err := pubsub.Subscribe(ctx, sub, ScrollTopic(pageID), func(ctx context.Context, ev ScrollEvent) error {
		// Messages still in flight after teardown are dropped.
		if ctx.Err() != nil {
			return nil
		}
		c.ObserveScroll(ev)
		return nil
	})
	if err != nil {
		c.mu.Lock()
		c.attached = false
		c.mu.Unlock()
		return err
	}

	context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.attached = false
		c.mu.Unlock()
	})
	return nil
}

// Attached reports whether a scroll subscription is currently live.
func (c *Controller) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attached
}

func (c *Controller) apply(transition func(State) State) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(transition(c.state))
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{State: c.state, Version: c.version}
}

func (c *Controller) setLocked(next State) {
	if next == c.state {
		return
	}
	c.state = next
	c.version++

	snap := c.snapshotLocked()
	select {
	case <-c.changes:
	default:
	}
	select {
	case c.changes <- snap:
	default:
	}
}
