package browser

import "time"

// LoadState describes whether a tab is fetching a top-level navigation.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateIdle    LoadState = "idle"
)

// Tab is the host's view of a single tab. The core never mutates tabs; it
// reads them from snapshots and reacts to transitions between snapshots.
type Tab struct {
	ID      int
	Title   string
	URL     string
	State   LoadState
	Active  bool
	Crashed bool
}

// Snapshot captures the full tab set at one instant.
type Snapshot struct {
	Tabs     []Tab
	ActiveID int
	Taken    time.Time
}

// Find returns the tab with the given id, if present.
func (s Snapshot) Find(id int) (Tab, bool) {
	for _, tab := range s.Tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}

// Version reports host build details from the debug endpoint.
type Version struct {
	Browser   string `json:"browser"`
	UserAgent string `json:"userAgent"`
}
