package navbar

import (
	"context"
	"math"
	"testing"
	"testing/quick"
	"time"

	"github.com/cisto/site/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestState_ScrollTheme(t *testing.T) {
	cases := []struct {
		offset float64
		want   Theme
	}{
		{0, ThemeTransparent},
		{49.9, ThemeTransparent},
		{50, ThemeTransparent},
		{50.5, ThemeOpaque},
		{120, ThemeOpaque},
		{-30, ThemeTransparent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, State{}.Scroll(tc.offset).Theme(), "offset %v", tc.offset)
	}

	atOrBelow := func(x float64) bool {
		offset := math.Min(math.Abs(x), ScrollThreshold)
		return State{Scrolled: true}.Scroll(offset).Theme() == ThemeTransparent
	}
	above := func(x float64) bool {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return true
		}
		offset := ScrollThreshold + 1 + math.Abs(x)
		return State{}.Scroll(offset).Theme() == ThemeOpaque
	}
	require.NoError(t, quick.Check(atOrBelow, nil))
	require.NoError(t, quick.Check(above, nil))
}

func TestState_MenuTransitions(t *testing.T) {
	for _, start := range []State{{}, {MenuOpen: true}, {Scrolled: true}, {Scrolled: true, MenuOpen: true}} {
		assert.Equal(t, start, start.ToggleMenu().ToggleMenu(), "double toggle from %+v", start)
		assert.False(t, start.SelectLink().MenuOpen, "select from %+v", start)
		assert.Equal(t, start.Scrolled, start.ToggleMenu().Scrolled, "menu must not touch scroll")
		assert.Equal(t, start.MenuOpen, start.Scroll(500).MenuOpen, "scroll must not touch menu")
	}
}

func TestController_Taps(t *testing.T) {
	c := NewController()
	assert.Equal(t, State{}, c.State())

	assert.True(t, c.ToggleMenu().MenuOpen)
	assert.False(t, c.ToggleMenu().MenuOpen)

	c.ToggleMenu()
	assert.False(t, c.SelectLink().MenuOpen)
	assert.False(t, c.SelectLink().MenuOpen, "selecting with the menu closed keeps it closed")
}

func TestController_StaleScrollEventsAreIgnored(t *testing.T) {
	c := NewController()

	c.ObserveScroll(ScrollEvent{Offset: 120, Seq: 2})
	assert.True(t, c.State().Scrolled)

	c.ObserveScroll(ScrollEvent{Offset: 0, Seq: 1})
	assert.True(t, c.State().Scrolled, "an older offset must not win")

	c.ObserveScroll(ScrollEvent{Offset: 10, Seq: 3})
	assert.False(t, c.State().Scrolled)

	c.ObserveScroll(ScrollEvent{Offset: 90})
	assert.True(t, c.State().Scrolled, "unsequenced events always apply")
}

func TestController_ChangesKeepsLatest(t *testing.T) {
	c := NewController()

	c.ToggleMenu()
	c.ObserveScroll(ScrollEvent{Offset: 200, Seq: 1})

	select {
	case s := <-c.Changes():
		assert.Equal(t, Snapshot{State: State{Scrolled: true, MenuOpen: true}, Version: 2}, s)
	default:
		t.Fatal("expected a pending change")
	}

	c.ObserveScroll(ScrollEvent{Offset: 300, Seq: 2})
	select {
	case s := <-c.Changes():
		t.Fatalf("no transition happened, got %+v", s)
	default:
	}
}

func TestController_VersionGrowsWithTransitions(t *testing.T) {
	c := NewController()
	assert.Equal(t, uint64(0), c.Snapshot().Version)

	opened := c.ToggleMenu()
	assert.Equal(t, uint64(1), opened.Version)

	scrolled := c.ObserveScroll(ScrollEvent{Offset: 120, Seq: 1})
	assert.Equal(t, uint64(2), scrolled.Version)
	assert.True(t, scrolled.MenuOpen)

	// No transition, no new version.
	assert.Equal(t, uint64(2), c.ObserveScroll(ScrollEvent{Offset: 200, Seq: 2}).Version)
	assert.Equal(t, uint64(2), c.ObserveScroll(ScrollEvent{Offset: 0, Seq: 1}).Version, "stale event")

	// The older fragment the tap produced must lose against the pushed one.
	assert.Less(t, opened.Version, c.Snapshot().Version)
	assert.Equal(t, c.Snapshot().State, c.State())
}

func TestController_AttachAndTeardown(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	c := NewController()
	require.NoError(t, c.Attach(ctx, bus, "page-1"))
	assert.True(t, c.Attached())
	assert.ErrorIs(t, c.Attach(ctx, bus, "page-1"), ErrAttached)

	require.NoError(t, pubsub.Publish(ctx, bus, ScrollTopic("page-1"), "page-1", ScrollEvent{Offset: 120, Seq: 1}))
	require.Eventually(t, func() bool { return c.State().Scrolled }, 2*time.Second, 10*time.Millisecond)

	// Other pages do not leak into this controller.
	require.NoError(t, pubsub.Publish(ctx, bus, ScrollTopic("page-2"), "page-2", ScrollEvent{Offset: 0, Seq: 2}))

	cancel()
	require.Eventually(t, func() bool { return !c.Attached() }, 2*time.Second, 10*time.Millisecond)

	// Once detached, scroll events no longer reach the controller.
	require.NoError(t, pubsub.Publish(context.Background(), bus, ScrollTopic("page-1"), "page-1", ScrollEvent{Offset: 0, Seq: 3}))
	time.Sleep(50 * time.Millisecond)
	assert.True(t, c.State().Scrolled)
}
