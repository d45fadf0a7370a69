package view

import (
	"context"
	"sync"
	"time"
)

// DefaultAdvanceEvery is the auto-advance period of the testimonial carousel.
const DefaultAdvanceEvery = 5 * time.Second

// Carousel is an active-index state machine over a fixed number of items,
// optionally advanced by a timer. Manual selection and the timer may race,
// so all state access is guarded.
type Carousel struct {
	mu    sync.Mutex
	count int
	index int

	// resetOnSelect controls what a manual selection does to the pending
	// auto-advance tick: when true the interval restarts, so the newly
	// selected item stays visible for a full period.
	resetOnSelect bool
	resetCh       chan struct{}
}

// CarouselOption configures a Carousel.
type CarouselOption func(*Carousel)

// WithResetOnSelect makes manual selection restart the auto-advance interval.
func WithResetOnSelect() CarouselOption {
	return func(c *Carousel) { c.resetOnSelect = true }
}

// NewCarousel builds a carousel over count items, starting at index 0.
func NewCarousel(count int, opts ...CarouselOption) *Carousel {
	if count <= 0 {
		panic("view: carousel needs at least one item")
	}
	c := &Carousel{
		count:   count,
		resetCh: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Index returns the active item index.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Count returns the number of items.
func (c *Carousel) Count() int {
	return c.count
}

// Advance moves to the next item, wrapping modulo the item count, and
// returns the new index.
func (c *Carousel) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % c.count
	return c.index
}

// Select activates the item at index i and reports whether i was in range.
// Under the reset-on-select policy it also restarts the auto-advance
// interval.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= c.count {
		return false
	}
	c.mu.Lock()
	c.index = i
	c.mu.Unlock()

	if c.resetOnSelect {
		select {
		case c.resetCh <- struct{}{}:
		default:
		}
	}
	return true
}

// Run auto-advances the carousel every period until ctx is cancelled. The
// timer is always released on exit. Run blocks; callers start it in a
// goroutine for the lifetime of the mounted page.
func (c *Carousel) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = DefaultAdvanceEvery
	}
	timer := time.NewTimer(every)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.resetCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(every)
		case <-timer.C:
			c.Advance()
			timer.Reset(every)
		}
	}
}
