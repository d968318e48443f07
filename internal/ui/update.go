package ui

import (
	"context"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluxtab/tabaction/internal/backend"
	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/menu"
)

func (m *Model) handleBackendEvent(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}

	ev := evt.event
	if ev.Err != nil {
		m.errMsg = ev.Err.Error()
		return tea.Batch(cmds...)
	}
	m.errMsg = ""

	switch ev.Kind {
	case backend.KindTabs:
		if snap, ok := ev.Data.(browser.Snapshot); ok {
			m.tabs = snap.Tabs
			m.clampSelection()
		}
	case backend.KindTabCreated, backend.KindTabUpdated:
		if tab, ok := ev.Data.(backend.TabEvent); ok {
			m.ctrl.HandleTab(tab)
		}
	case backend.KindNavigationBegin, backend.KindNavigationComplete, backend.KindNavigationError:
		if nav, ok := ev.Data.(backend.NavigationEvent); ok {
			kind := ev.Kind
			cmds = append(cmds, func() tea.Msg {
				m.ctrl.HandleNavigation(context.Background(), kind, nav)
				return RefreshMsg{}
			})
		}
	case backend.KindTabsClosed:
		if closed, ok := ev.Data.(backend.ClosedEvent); ok {
			m.ctrl.HandleClosed(closed)
			m.clampSelection()
		}
	case backend.KindThemes:
		if th, ok := ev.Data.(backend.ThemeEvent); ok {
			if m.themes.Observe(th.Enabled) {
				m.ctrl.RefreshAll()
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscape()
	case "up":
		m.moveCursor(-1)
		return nil
	case "down":
		m.moveCursor(1)
		return nil
	case "enter":
		return m.handleEnter()
	case "right":
		if !m.menuOpen {
			if _, ok := m.selectedTab(); ok {
				m.menuOpen = true
				m.menuCursor = 0
			}
		}
		return nil
	case "left":
		m.menuOpen = false
		return nil
	case "ctrl+e":
		// Bound command: empty cache and hard reload the selected tab.
		return m.commandCmd(menu.EmptyCacheAndHardReload)
	case "ctrl+u":
		if m.filter != "" {
			m.filter = ""
			m.clampSelection()
		}
		return nil
	}

	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.clampSelection()
		}
		return nil
	case tea.KeyRunes, tea.KeySpace:
		if key.Alt {
			return nil
		}
		text := " "
		if key.Type == tea.KeyRunes {
			for _, r := range key.Runes {
				if unicode.IsControl(r) {
					return nil
				}
			}
			text = string(key.Runes)
		}
		if m.menuOpen {
			return nil
		}
		m.filter += text
		m.selected = 0
		m.clampSelection()
		return nil
	}
	return nil
}

func (m *Model) handleEscape() tea.Cmd {
	if m.menuOpen {
		m.menuOpen = false
		return nil
	}
	if m.filter != "" {
		m.filter = ""
		m.clampSelection()
		return nil
	}
	return tea.Quit
}

func (m *Model) moveCursor(delta int) {
	if m.menuOpen {
		count := len(menu.Commands())
		m.menuCursor += delta
		if m.menuCursor < 0 {
			m.menuCursor = 0
		}
		if m.menuCursor >= count {
			m.menuCursor = count - 1
		}
		return
	}
	m.selected += delta
	m.clampSelection()
}

func (m *Model) handleEnter() tea.Cmd {
	if m.menuOpen {
		commands := menu.Commands()
		if m.menuCursor < 0 || m.menuCursor >= len(commands) {
			return nil
		}
		id := commands[m.menuCursor].ID
		m.menuOpen = false
		return m.commandCmd(id)
	}
	tab, ok := m.selectedTab()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		m.ctrl.HandleClick(context.Background(), tab.ID)
		return RefreshMsg{}
	}
}

func (m *Model) commandCmd(commandID string) tea.Cmd {
	tab, ok := m.selectedTab()
	if !ok {
		return nil
	}
	if cmd, found := menu.Lookup(commandID); found && m.verbose {
		m.setInfo(cmd.Label)
	}
	return func() tea.Msg {
		m.ctrl.HandleCommand(context.Background(), tab.ID, commandID)
		return RefreshMsg{}
	}
}
