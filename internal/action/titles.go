package action

import (
	"fmt"
	"sync"

	"github.com/fluxtab/tabaction/internal/browser"
)

const busyTitle = "Stop loading"

// Titles holds the two action title strings. The busy title is static; the
// idle title embeds the OS reload shortcut and stays unresolved until
// platform detection completes, so idle title reads are eventually
// consistent rather than synchronous.
type Titles struct {
	mu   sync.Mutex
	idle string
}

// NewTitles creates the title pair with the idle title unresolved.
func NewTitles() *Titles {
	return &Titles{}
}

// SetIdleShortcut fills in the idle title once the shortcut label is known.
func (t *Titles) SetIdleShortcut(label string) {
	t.mu.Lock()
	t.idle = fmt.Sprintf("Reload (%s)", label)
	t.mu.Unlock()
}

// For returns the title for a load-state. The second result is false while
// the idle title is still unresolved; callers skip the update rather than
// write an empty title.
func (t *Titles) For(state browser.LoadState) (string, bool) {
	if state == browser.StateLoading {
		return busyTitle, true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.idle == "" {
		return "", false
	}
	return t.idle, true
}
