package backend

import (
	"context"
	"sync"
	"time"

	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/logging/events"
)

// Source is the slice of the host client the watcher needs.
type Source interface {
	List(ctx context.Context) (browser.Snapshot, error)
	Themes(ctx context.Context) ([]string, error)
}

// Watcher polls the host at a fixed interval and publishes lifecycle events
// derived from consecutive snapshots.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// minPollGap bounds how fast back-to-back polls may run regardless of the
// configured interval.
const minPollGap = 100 * time.Millisecond

// NewWatcher creates a watcher that polls the source every interval.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 32),
	}

	w.startTabPoller()
	w.startThemePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startTabPoller() {
	gate := newGate(minPollGap)
	var prev browser.Snapshot
	first := true
	w.wg.Add(1)
	go w.poll("tabs", func(ctx context.Context) ([]Event, error) {
		gate.wait()
		snap, err := w.source.List(ctx)
		if err != nil {
			return nil, err
		}
		out := diffSnapshots(prev, snap, first)
		prev = snap
		first = false
		return out, nil
	})
}

func (w *Watcher) startThemePoller() {
	gate := newGate(minPollGap)
	var last []string
	seeded := false
	w.wg.Add(1)
	go w.poll("themes", func(ctx context.Context) ([]Event, error) {
		gate.wait()
		ids, err := w.source.Themes(ctx)
		if err != nil {
			return nil, err
		}
		if seeded && equalStrings(last, ids) {
			return nil, nil
		}
		last = append([]string(nil), ids...)
		seeded = true
		return []Event{{Kind: KindThemes, Data: ThemeEvent{Enabled: last}}}, nil
	})
}

func (w *Watcher) poll(kind string, fetch func(context.Context) ([]Event, error)) {
	defer w.wg.Done()

	failing := false
	emit := func() bool {
		batch, err := fetch(w.ctx)
		if err != nil {
			events.Backend.PollError(kind, err)
			failing = true
			batch = []Event{{Err: err}}
		} else if failing {
			events.Backend.Recovered(kind)
			failing = false
		}
		for _, evt := range batch {
			select {
			case <-w.ctx.Done():
				return false
			case w.events <- evt:
			}
		}
		return true
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

// gate enforces a minimum spacing between successive operations.
type gate struct {
	gap time.Duration

	mu   sync.Mutex
	next time.Time
}

func newGate(gap time.Duration) *gate {
	if gap <= 0 {
		return &gate{}
	}
	return &gate{gap: gap}
}

func (g *gate) wait() {
	if g == nil || g.gap <= 0 {
		return
	}
	for {
		g.mu.Lock()
		wait := time.Until(g.next)
		if wait <= 0 {
			g.next = time.Now().Add(g.gap)
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		if wait > g.gap {
			wait = g.gap
		}
		time.Sleep(wait)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
