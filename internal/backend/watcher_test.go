package backend

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fluxtab/tabaction/internal/browser"
)

type fakeSource struct {
	mu     sync.Mutex
	snap   browser.Snapshot
	themes []string
}

func (f *fakeSource) List(context.Context) (browser.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := f.snap
	snap.Taken = time.Now()
	return snap, nil
}

func (f *fakeSource) Themes(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.themes...), nil
}

func (f *fakeSource) setSnap(snap browser.Snapshot) {
	f.mu.Lock()
	f.snap = snap
	f.mu.Unlock()
}

func collectKinds(t *testing.T, w *Watcher, want map[Kind]bool, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		done := true
		for _, seen := range want {
			if !seen {
				done = false
			}
		}
		if done {
			return
		}
		select {
		case ev, ok := <-w.Events():
			if !ok {
				t.Fatalf("events channel closed before all kinds arrived: %v", want)
			}
			if ev.Err != nil {
				continue
			}
			if _, tracked := want[ev.Kind]; tracked {
				want[ev.Kind] = true
			}
		case <-deadline:
			t.Fatalf("timed out waiting for kinds: %v", want)
		}
	}
}

func TestWatcherEmitsInitialEnumerationAndThemes(t *testing.T) {
	src := &fakeSource{
		snap:   browser.Snapshot{Tabs: []browser.Tab{{ID: 1, State: browser.StateIdle}}},
		themes: []string{"theme/nightfall"},
	}
	w := NewWatcher(src, 20*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	collectKinds(t, w, map[Kind]bool{
		KindTabs:       false,
		KindTabCreated: false,
		KindThemes:     false,
	}, 5*time.Second)
}

func TestWatcherEmitsNavigationOnStateChange(t *testing.T) {
	src := &fakeSource{
		snap: browser.Snapshot{Tabs: []browser.Tab{{ID: 1, State: browser.StateIdle}}},
	}
	w := NewWatcher(src, 20*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	collectKinds(t, w, map[Kind]bool{KindTabs: false}, 5*time.Second)
	src.setSnap(browser.Snapshot{Tabs: []browser.Tab{{ID: 1, State: browser.StateLoading}}})
	collectKinds(t, w, map[Kind]bool{KindNavigationBegin: false}, 5*time.Second)
}
