package backend

import (
	"time"

	"github.com/fluxtab/tabaction/internal/browser"
)

// Kind identifies the type of data carried by a backend event.
type Kind int

const (
	KindTabs Kind = iota
	KindTabCreated
	KindTabUpdated
	KindNavigationBegin
	KindNavigationComplete
	KindNavigationError
	KindTabsClosed
	KindThemes
)

func (k Kind) String() string {
	switch k {
	case KindTabs:
		return "tabs"
	case KindTabCreated:
		return "tab.created"
	case KindTabUpdated:
		return "tab.updated"
	case KindNavigationBegin:
		return "navigation.begin"
	case KindNavigationComplete:
		return "navigation.complete"
	case KindNavigationError:
		return "navigation.error"
	case KindTabsClosed:
		return "tabs.closed"
	case KindThemes:
		return "themes"
	}
	return "unknown"
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// TabEvent accompanies KindTabCreated and KindTabUpdated. Initial marks tabs
// seen during the first enumeration, which must not force an animation.
type TabEvent struct {
	Tab     browser.Tab
	Time    time.Time
	Initial bool
}

// NavigationEvent accompanies the navigation kinds. FrameID zero is the
// top-level frame; sub-frame navigations carry non-zero ids and are ignored
// downstream.
type NavigationEvent struct {
	TabID   int
	FrameID int
	State   browser.LoadState
	URL     string
	Time    time.Time
}

// ClosedEvent lists tab ids that disappeared between two polls.
type ClosedEvent struct {
	IDs  []int
	Time time.Time
}

// ThemeEvent carries the enabled theme extension ids.
type ThemeEvent struct {
	Enabled []string
}
