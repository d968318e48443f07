package action

import (
	"context"
	"sync"
	"time"

	"github.com/fluxtab/tabaction/internal/backend"
	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/debounce"
	"github.com/fluxtab/tabaction/internal/icon"
	"github.com/fluxtab/tabaction/internal/logging"
	"github.com/fluxtab/tabaction/internal/logging/events"
	"github.com/fluxtab/tabaction/internal/menu"
	"github.com/fluxtab/tabaction/internal/theme"
	"github.com/fluxtab/tabaction/internal/timer"
)

// Host is the slice of the browser client the controller drives.
type Host interface {
	Tab(ctx context.Context, id int) (browser.Tab, bool, error)
	Reload(ctx context.Context, id int, bypassCache bool) error
	Stop(ctx context.Context, id int) error
	ClearCache(ctx context.Context, id int) error
}

// Controller is the entry point for every observed tab lifecycle event. It
// keeps icon and title consistent with each tab's last known load-state and
// mirrors both onto every registered surface.
type Controller struct {
	host     Host
	themes   *theme.Watcher
	titles   *Titles
	deb      *debounce.Debouncer
	timers   *timer.Set
	surfaces []Surface

	mu     sync.Mutex
	states map[int]browser.LoadState
	seen   map[int]struct{}
	notify func()
}

// NewController wires the controller. The settle delay is configurable for
// tests; production passes icon.ClipLength.
func NewController(host Host, themes *theme.Watcher, titles *Titles, settleDelay time.Duration, surfaces ...Surface) *Controller {
	c := &Controller{
		host:     host,
		themes:   themes,
		titles:   titles,
		deb:      debounce.New(settleDelay),
		surfaces: surfaces,
		states:   make(map[int]browser.LoadState),
		seen:     make(map[int]struct{}),
	}
	c.timers = timer.NewSet(settleDelay,
		func(state browser.LoadState, phase icon.Phase) string {
			return icon.Resolve(state, themes.IsDark(), phase)
		},
		c.applyIcon,
	)
	return c
}

// SetNotify registers a callback invoked after any surface mutation, used to
// wake the render loop. Safe to leave unset in tests.
func (c *Controller) SetNotify(fn func()) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// HandleTab reacts to a tab creation or update notification: the action
// becomes visible, the title tracks load-state, and the icon updates with an
// animation unless this is the controller's first sight of the tab (the
// initial enumeration renders icons without forcing a transition clip).
func (c *Controller) HandleTab(ev backend.TabEvent) {
	tab := ev.Tab
	c.mu.Lock()
	_, known := c.seen[tab.ID]
	c.seen[tab.ID] = struct{}{}
	c.states[tab.ID] = tab.State
	c.mu.Unlock()

	if known {
		events.Tab.Updated(tab.ID, tab.Title, string(tab.State))
	} else {
		events.Tab.Created(tab.ID, tab.Title, ev.Initial)
	}
	for _, s := range c.surfaces {
		s.SetVisible(tab.ID, true)
	}
	c.applyTitle(tab.ID, tab.State)
	if !known || ev.Initial {
		c.timers.SkipAnimation(tab.ID, tab.State)
		return
	}
	c.timers.StartAnimation(tab.ID, tab.State)
}

// HandleNavigation reacts to a navigation-family event. Sub-frame
// navigations are ignored. The tab's load-state is re-fetched after the
// asynchronous host call so a state captured before the wait is never
// trusted; the debouncer then decides between animating and snapping.
func (c *Controller) HandleNavigation(ctx context.Context, kind backend.Kind, ev backend.NavigationEvent) {
	if ev.FrameID != 0 {
		return
	}
	events.Tab.Navigation(ev.TabID, ev.FrameID, kind.String())

	state := ev.State
	tab, ok, err := c.host.Tab(ctx, ev.TabID)
	if err != nil {
		logging.Error(err)
	} else if !ok {
		return
	} else {
		state = tab.State
	}

	c.mu.Lock()
	c.seen[ev.TabID] = struct{}{}
	c.states[ev.TabID] = state
	c.mu.Unlock()

	if c.deb.ShouldAnimate(ev.TabID, ev.Time) {
		c.timers.StartAnimation(ev.TabID, state)
	} else {
		c.timers.SkipAnimation(ev.TabID, state)
	}
	c.applyTitle(ev.TabID, state)
}

// HandleClick reacts to the action button: abort when loading, reload when
// idle. An abort the host refuses (privileged page) is logged and swallowed;
// icon and title stay untouched until the next natural navigation event.
func (c *Controller) HandleClick(ctx context.Context, tabID int) {
	tab, ok, err := c.host.Tab(ctx, tabID)
	if err != nil {
		logging.Error(err)
		return
	}
	if !ok {
		return
	}
	events.Action.Click(tabID, string(tab.State))
	if tab.State == browser.StateLoading {
		events.Action.Abort(tabID)
		if err := c.host.Stop(ctx, tabID); err != nil {
			events.Action.AbortDenied(tabID, err)
			logging.Error(err)
		}
		return
	}
	events.Action.Reload(tabID, false)
	if err := c.host.Reload(ctx, tabID, false); err != nil {
		logging.Error(err)
	}
}

// HandleCommand executes a named reload command against the host.
func (c *Controller) HandleCommand(ctx context.Context, tabID int, commandID string) {
	if _, ok := menu.Lookup(commandID); !ok {
		return
	}
	events.Action.Command(tabID, commandID)
	var err error
	switch commandID {
	case menu.NormalReload:
		err = c.host.Reload(ctx, tabID, false)
	case menu.HardReload:
		err = c.host.Reload(ctx, tabID, true)
	case menu.EmptyCacheAndHardReload:
		if err = c.host.ClearCache(ctx, tabID); err == nil {
			err = c.host.Reload(ctx, tabID, true)
		}
	}
	if err != nil {
		events.Action.Error(err)
		logging.Error(err)
	}
}

// RefreshAll re-applies the settled icon for every known tab. Called when
// the theme flag flips: the asset set is theme-global, so every tab
// refreshes, not just the one that triggered the change. In-flight
// animations are superseded by the refreshed still frame.
func (c *Controller) RefreshAll() {
	states := c.statesCopy()
	for id, state := range states {
		c.timers.SkipAnimation(id, state)
		c.applyTitle(id, state)
	}
	events.Theme.Refresh(len(states))
}

// RefreshTitles re-applies titles for every known tab, used once platform
// detection resolves the idle title.
func (c *Controller) RefreshTitles() {
	for id, state := range c.statesCopy() {
		c.applyTitle(id, state)
	}
}

// HandleClosed drops per-tab state for closed tabs and prunes the debouncer
// and timer maps down to the surviving set.
func (c *Controller) HandleClosed(ev backend.ClosedEvent) {
	c.mu.Lock()
	for _, id := range ev.IDs {
		delete(c.states, id)
		delete(c.seen, id)
	}
	open := make(map[int]struct{}, len(c.states))
	for id := range c.states {
		open[id] = struct{}{}
	}
	c.mu.Unlock()

	for _, id := range ev.IDs {
		for _, s := range c.surfaces {
			s.Remove(id)
		}
	}
	c.deb.Prune(open)
	c.timers.Prune(open)
	events.Tab.Pruned(ev.IDs)
}

// PendingAnimation reports whether a settle timer is outstanding for a tab.
func (c *Controller) PendingAnimation(tabID int) bool {
	return c.timers.HasPending(tabID)
}

// State returns the last known load-state for a tab.
func (c *Controller) State(tabID int) (browser.LoadState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.states[tabID]
	return state, ok
}

func (c *Controller) applyIcon(tabID int, asset string) {
	for _, s := range c.surfaces {
		s.SetIcon(tabID, asset)
	}
	c.wake()
}

func (c *Controller) applyTitle(tabID int, state browser.LoadState) {
	title, ok := c.titles.For(state)
	if !ok {
		events.Tab.TitleDeferred(tabID)
		return
	}
	for _, s := range c.surfaces {
		s.SetTitle(tabID, title)
	}
	c.wake()
}

func (c *Controller) statesCopy() map[int]browser.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int]browser.LoadState, len(c.states))
	for id, state := range c.states {
		out[id] = state
	}
	return out
}

func (c *Controller) wake() {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
