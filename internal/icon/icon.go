// Package icon maps load-state, theme variant, and animation phase to icon
// asset identifiers.
package icon

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fluxtab/tabaction/internal/browser"
)

// ClipLength is the duration of the transition clips. The settle timer and
// the navigation debounce window both derive from it.
const ClipLength = 417 * time.Millisecond

// Phase selects between the animated transition clip and the static icon.
type Phase int

const (
	Settled Phase = iota
	Transition
)

func (p Phase) String() string {
	if p == Transition {
		return "transition"
	}
	return "settled"
}

// Resolve returns the asset identifier for the given load-state, theme
// variant, and phase. Settled results are stable; Transition results carry a
// fresh version marker on every call so that a clip requested twice within
// milliseconds re-renders from its first frame instead of resuming from a
// cached playback position.
func Resolve(state browser.LoadState, dark bool, phase Phase) string {
	variant := "light"
	if dark {
		variant = "dark"
	}
	if phase == Transition {
		name := "stop-to-reload"
		if state == browser.StateLoading {
			name = "reload-to-stop"
		}
		return fmt.Sprintf("icons/%s/%s.apng?v=%s", variant, name, uuid.NewString())
	}
	name := "reload"
	if state == browser.StateLoading {
		name = "stop"
	}
	return fmt.Sprintf("icons/%s/%s.png", variant, name)
}

// Base strips the cache-defeating marker from an asset identifier, yielding
// the logical asset name.
func Base(asset string) string {
	for i := 0; i < len(asset); i++ {
		if asset[i] == '?' {
			return asset[:i]
		}
	}
	return asset
}
