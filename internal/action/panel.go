package action

import "sync"

// Surface receives per-tab icon and title updates. The controller mirrors
// every update onto all registered surfaces so they always show identical
// values for a given tab.
type Surface interface {
	SetIcon(tabID int, asset string)
	SetTitle(tabID int, title string)
	SetVisible(tabID int, visible bool)
	Remove(tabID int)
}

// Display is one tab's rendered action state on a surface.
type Display struct {
	Icon    string
	Title   string
	Visible bool
}

// Panel is a mutex-guarded Surface backing store; the UI renders from it and
// timer goroutines write into it.
type Panel struct {
	name string

	mu      sync.RWMutex
	entries map[int]Display
}

// NewPanel creates a named panel.
func NewPanel(name string) *Panel {
	return &Panel{name: name, entries: make(map[int]Display)}
}

// Name identifies the surface, for traces and tests.
func (p *Panel) Name() string {
	return p.name
}

func (p *Panel) SetIcon(tabID int, asset string) {
	p.mu.Lock()
	entry := p.entries[tabID]
	entry.Icon = asset
	p.entries[tabID] = entry
	p.mu.Unlock()
}

func (p *Panel) SetTitle(tabID int, title string) {
	p.mu.Lock()
	entry := p.entries[tabID]
	entry.Title = title
	p.entries[tabID] = entry
	p.mu.Unlock()
}

func (p *Panel) SetVisible(tabID int, visible bool) {
	p.mu.Lock()
	entry := p.entries[tabID]
	entry.Visible = visible
	p.entries[tabID] = entry
	p.mu.Unlock()
}

func (p *Panel) Remove(tabID int) {
	p.mu.Lock()
	delete(p.entries, tabID)
	p.mu.Unlock()
}

// Get returns the display state for a tab.
func (p *Panel) Get(tabID int) (Display, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	entry, ok := p.entries[tabID]
	return entry, ok
}

// Snapshot copies the panel contents.
func (p *Panel) Snapshot() map[int]Display {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[int]Display, len(p.entries))
	for id, entry := range p.entries {
		out[id] = entry
	}
	return out
}
