package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluxtab/tabaction/internal/action"
	"github.com/fluxtab/tabaction/internal/backend"
	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/theme"
)

const infoTimeout = 3 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// RefreshMsg wakes the render loop after an off-loop surface mutation (timer
// fires, async host calls).
type RefreshMsg struct{}

type backendEventMsg struct {
	event backend.Event
}

// Model implements the Bubble Tea model driving both action surfaces: the
// tab strip (toolbar) and the context-menu panel.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	backend *backend.Watcher
	ctrl    *action.Controller
	themes  *theme.Watcher
	toolbar *action.Panel
	menu    *action.Panel

	tabs       []browser.Tab
	selected   int
	menuOpen   bool
	menuCursor int

	filter       string
	filterCursor cursor.Model

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state.
func NewModel(watcher *backend.Watcher, ctrl *action.Controller, themes *theme.Watcher, toolbar, menuPanel *action.Panel, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		backend:    watcher,
		ctrl:       ctrl,
		themes:     themes,
		toolbar:    toolbar,
		menu:       menuPanel,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if s := m.styles(); s.Cursor != nil {
		c.Style = *s.Cursor
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update is part of the tea.Model interface.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKey,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleResize,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEvent,
		reflect.TypeOf(RefreshMsg{}):        m.handleRefresh,
	}
}

func (m *Model) styles() *theme.Styles {
	if m.themes == nil {
		return theme.Light()
	}
	return theme.Select(m.themes.IsDark())
}

func (m *Model) handleResize(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleRefresh(tea.Msg) tea.Cmd {
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return nil
}

// visibleTabs applies the fuzzy filter to the current tab set.
func (m *Model) visibleTabs() []browser.Tab {
	return FilterTabs(m.tabs, m.filter)
}

// selectedTab resolves the tab under the cursor in the filtered list.
func (m *Model) selectedTab() (browser.Tab, bool) {
	visible := m.visibleTabs()
	if len(visible) == 0 {
		return browser.Tab{}, false
	}
	idx := m.selected
	if idx < 0 {
		idx = 0
	}
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	return visible[idx], true
}

func (m *Model) clampSelection() {
	visible := m.visibleTabs()
	if len(visible) == 0 {
		m.selected = 0
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(visible) {
		m.selected = len(visible) - 1
	}
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(infoTimeout)
}

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return backendEventMsg{event: ev}
	}
}
