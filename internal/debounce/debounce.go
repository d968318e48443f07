// Package debounce decides whether a navigation should play a transition
// animation or snap straight to a still frame. Navigations that arrive
// faster than one animation cycle would stack clips and flicker; snapping
// keeps the button readable during redirect chains.
package debounce

import (
	"sync"
	"time"
)

// Debouncer tracks the last navigation instant per tab id. Entries are only
// overwritten, never removed implicitly; Prune drops ids for closed tabs.
type Debouncer struct {
	window time.Duration

	mu   sync.Mutex
	last map[int]time.Time
}

// New creates a debouncer with the given suppression window, normally the
// transition clip length.
func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window: window,
		last:   make(map[int]time.Time),
	}
}

// ShouldAnimate reports whether a navigation at the given instant should play
// a transition clip. The instant is recorded as the tab's last navigation
// regardless of the result, so a burst of fast navigations keeps suppressing
// until a full window elapses between two consecutive events.
func (d *Debouncer) ShouldAnimate(tabID int, at time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	prior, ok := d.last[tabID]
	d.last[tabID] = at
	if !ok {
		return true
	}
	return at.Sub(prior) >= d.window
}

// Prune drops entries for tab ids not present in open. Correctness never
// depends on pruning; it only bounds the map by live tabs instead of tab
// churn.
func (d *Debouncer) Prune(open map[int]struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id := range d.last {
		if _, ok := open[id]; !ok {
			delete(d.last, id)
		}
	}
}

// Len reports the number of tracked tabs.
func (d *Debouncer) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.last)
}
