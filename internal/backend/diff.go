package backend

import (
	"sort"
	"time"

	"github.com/fluxtab/tabaction/internal/browser"
)

// topFrame is the frame id assigned to events derived from snapshot polling;
// the poll only observes top-level navigation state.
const topFrame = 0

// diffSnapshots turns two consecutive snapshots into lifecycle events. The
// snapshot's Taken time stamps every derived event so downstream debouncing
// measures host time, not handler time.
func diffSnapshots(prev, next browser.Snapshot, first bool) []Event {
	now := next.Taken
	events := []Event{{Kind: KindTabs, Data: next}}

	known := make(map[int]browser.Tab, len(prev.Tabs))
	if !first {
		for _, tab := range prev.Tabs {
			known[tab.ID] = tab
		}
	}

	seen := make(map[int]struct{}, len(next.Tabs))
	for _, tab := range next.Tabs {
		seen[tab.ID] = struct{}{}
		before, ok := known[tab.ID]
		if !ok {
			events = append(events, Event{
				Kind: KindTabCreated,
				Data: TabEvent{Tab: tab, Time: now, Initial: first},
			})
			continue
		}
		events = append(events, tabTransition(before, tab, now)...)
	}

	if !first {
		closed := make([]int, 0)
		for id := range known {
			if _, ok := seen[id]; !ok {
				closed = append(closed, id)
			}
		}
		if len(closed) > 0 {
			sort.Ints(closed)
			events = append(events, Event{Kind: KindTabsClosed, Data: ClosedEvent{IDs: closed, Time: now}})
		}
	}
	return events
}

// tabTransition derives events for a tab present in both snapshots.
func tabTransition(before, after browser.Tab, now time.Time) []Event {
	nav := NavigationEvent{
		TabID:   after.ID,
		FrameID: topFrame,
		State:   after.State,
		URL:     after.URL,
		Time:    now,
	}
	switch {
	case before.State == browser.StateIdle && after.State == browser.StateLoading:
		return []Event{{Kind: KindNavigationBegin, Data: nav}}
	case before.State == browser.StateLoading && after.State == browser.StateIdle:
		if after.Crashed {
			return []Event{{Kind: KindNavigationError, Data: nav}}
		}
		return []Event{{Kind: KindNavigationComplete, Data: nav}}
	case before.State == browser.StateLoading && after.URL != before.URL:
		// A URL change mid-load is a redirect hop: a fresh top-level
		// navigation began before the previous one finished.
		return []Event{{Kind: KindNavigationBegin, Data: nav}}
	case before.Title != after.Title || before.URL != after.URL || before.Active != after.Active:
		return []Event{{Kind: KindTabUpdated, Data: TabEvent{Tab: after, Time: now}}}
	}
	return nil
}
