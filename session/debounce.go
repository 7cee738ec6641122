package session

import (
	"sync"
	"time"
)

// Debouncer implements the autosave scheduling contract: every mutation
// schedules a save after a fixed delay, and a newer mutation invalidates
// any pending one. Last write wins; only the latest full state is sent.
// The caller owns the timer (e.g. a tea.Tick); the debouncer only tracks
// which scheduled fire is still current.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	gen   uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule registers a new pending save and returns its generation.
// Any previously scheduled generation becomes stale.
func (d *Debouncer) Schedule() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	return d.gen
}

// Due reports whether the given generation is still the latest, i.e.
// whether a timer that fires for it should actually persist.
func (d *Debouncer) Due(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.gen
}
