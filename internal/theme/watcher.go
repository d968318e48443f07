package theme

import (
	"sync"

	"github.com/fluxtab/tabaction/internal/logging/events"
)

// defaultDarkThemes are the theme extension ids treated as dark when the
// config file does not supply its own set.
var defaultDarkThemes = []string{
	"theme/midnight",
	"theme/obsidian",
	"theme/charcoal",
	"theme/slate-dark",
}

// Watcher holds the process-wide dark flag. It defaults to false until the
// initial enabled-extension scan resolves; if no known dark theme is found
// the default stands.
type Watcher struct {
	mu    sync.Mutex
	dark  bool
	known map[string]struct{}
}

// NewWatcher builds a watcher recognising the given dark theme ids; an empty
// list falls back to the built-in set.
func NewWatcher(darkIDs []string) *Watcher {
	if len(darkIDs) == 0 {
		darkIDs = defaultDarkThemes
	}
	known := make(map[string]struct{}, len(darkIDs))
	for _, id := range darkIDs {
		known[id] = struct{}{}
	}
	return &Watcher{known: known}
}

// IsDark reports the current flag. Readable at any time; false before the
// first Observe.
func (w *Watcher) IsDark() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dark
}

// SetDark overwrites the flag and reports whether it changed. Callers react
// to a change by refreshing icons for every open tab, since the asset set is
// theme-global.
func (w *Watcher) SetDark(dark bool) bool {
	w.mu.Lock()
	changed := w.dark != dark
	w.dark = dark
	w.mu.Unlock()
	if changed {
		events.Theme.Changed(dark)
	}
	return changed
}

// Observe derives the flag from an enabled-extension list and reports whether
// it changed.
func (w *Watcher) Observe(enabled []string) bool {
	dark := false
	w.mu.Lock()
	for _, id := range enabled {
		if _, ok := w.known[id]; ok {
			dark = true
			break
		}
	}
	w.mu.Unlock()
	return w.SetDark(dark)
}
