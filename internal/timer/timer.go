// Package timer owns the per-tab settle timers. Each tab has at most one
// live timer; starting a new animation cancels and replaces the previous one.
package timer

import (
	"sync"
	"time"

	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/icon"
	"github.com/fluxtab/tabaction/internal/logging/events"
)

// ResolveFunc maps a load-state and phase to an asset identifier. The theme
// axis is bound by the caller so resolution always sees the current flag.
type ResolveFunc func(state browser.LoadState, phase icon.Phase) string

// ApplyFunc pushes a resolved asset onto every UI surface for a tab. It may
// be called from a timer goroutine and must be safe for that.
type ApplyFunc func(tabID int, asset string)

type entry struct {
	timer *time.Timer
	gen   uint64
}

// Set schedules "settle to still frame" updates, one pending at most per tab.
// time.Timer.Stop cannot promise the callback has not already been queued, so
// every schedule carries a generation; a fired callback whose generation is
// stale no-ops. Exactly one of "fires" or "is canceled" takes effect.
type Set struct {
	delay   time.Duration
	resolve ResolveFunc
	apply   ApplyFunc

	mu      sync.Mutex
	pending map[int]entry
	gens    map[int]uint64
}

// NewSet builds a timer set with the given settle delay, normally the
// transition clip length.
func NewSet(delay time.Duration, resolve ResolveFunc, apply ApplyFunc) *Set {
	return &Set{
		delay:   delay,
		resolve: resolve,
		apply:   apply,
		pending: make(map[int]entry),
		gens:    make(map[int]uint64),
	}
}

// StartAnimation applies the transition clip for the tab immediately and
// schedules the settle update. Any pending timer for the tab is canceled
// first; that cancellation is the only way a timer is removed before firing.
func (s *Set) StartAnimation(tabID int, state browser.LoadState) {
	s.mu.Lock()
	s.cancelLocked(tabID)
	s.gens[tabID]++
	gen := s.gens[tabID]
	clip := s.resolve(state, icon.Transition)
	t := time.AfterFunc(s.delay, func() {
		s.settle(tabID, gen, state)
	})
	s.pending[tabID] = entry{timer: t, gen: gen}
	s.mu.Unlock()

	events.Tab.Animate(tabID, clip)
	s.apply(tabID, clip)
}

// SkipAnimation cancels any pending timer for the tab and applies the settled
// icon immediately, with no scheduling. Idempotent for tabs with no timer.
func (s *Set) SkipAnimation(tabID int, state browser.LoadState) {
	s.mu.Lock()
	s.cancelLocked(tabID)
	s.gens[tabID]++
	still := s.resolve(state, icon.Settled)
	s.mu.Unlock()

	events.Tab.Skip(tabID, still)
	s.apply(tabID, still)
}

// HasPending reports whether a settle timer is outstanding for the tab.
func (s *Set) HasPending(tabID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[tabID]
	return ok
}

// Prune cancels and drops timers for tab ids not present in open, and clears
// their generation counters.
func (s *Set) Prune(open map[int]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.pending {
		if _, ok := open[id]; !ok {
			s.cancelLocked(id)
		}
	}
	for id := range s.gens {
		if _, ok := open[id]; !ok {
			delete(s.gens, id)
		}
	}
}

func (s *Set) settle(tabID int, gen uint64, state browser.LoadState) {
	s.mu.Lock()
	if s.gens[tabID] != gen {
		s.mu.Unlock()
		return
	}
	delete(s.pending, tabID)
	still := s.resolve(state, icon.Settled)
	s.mu.Unlock()

	events.Tab.Settle(tabID, still)
	s.apply(tabID, still)
}

func (s *Set) cancelLocked(tabID int) {
	if e, ok := s.pending[tabID]; ok {
		e.timer.Stop()
		delete(s.pending, tabID)
	}
}
