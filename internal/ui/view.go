package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/icon"
	"github.com/fluxtab/tabaction/internal/menu"
)

const headerTitle = "tabs"

// glyphFor maps an icon asset identifier to a single-cell terminal glyph.
// Transition clips render as half-filled circles so an in-flight animation
// is visually distinct from both stills.
func glyphFor(asset string) string {
	base := icon.Base(asset)
	switch {
	case strings.HasSuffix(base, "/reload-to-stop.apng"):
		return "◐"
	case strings.HasSuffix(base, "/stop-to-reload.apng"):
		return "◑"
	case strings.HasSuffix(base, "/stop.png"):
		return "■"
	case strings.HasSuffix(base, "/reload.png"):
		return "⟳"
	}
	return "·"
}

// View implements tea.Model.
func (m *Model) View() string {
	s := m.styles()
	lines := make([]string, 0, len(m.tabs)+8)

	header := headerTitle
	if m.filter != "" {
		prompt := "/"
		if s.FilterPrompt != nil {
			prompt = s.FilterPrompt.Render("/")
		}
		filterText := m.filter
		if s.Filter != nil {
			filterText = s.Filter.Render(m.filter)
		}
		header = fmt.Sprintf("%s  %s%s%s", header, prompt, filterText, m.filterCursor.View())
	}
	if s.Header != nil {
		lines = append(lines, s.Header.Render(header))
	} else {
		lines = append(lines, header)
	}

	visible := m.visibleTabs()
	if len(visible) == 0 {
		msg := "(no tabs)"
		if m.filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.filter)
		}
		lines = append(lines, renderWith(s.Info, msg))
	}
	for i, tab := range visible {
		lines = append(lines, m.renderTabLine(tab, i == m.selected))
	}

	if m.menuOpen {
		lines = append(lines, "")
		lines = append(lines, m.renderContextMenu()...)
	}

	if m.errMsg != "" {
		lines = append(lines, renderWith(s.Error, m.errMsg))
	}
	if m.infoMsg != "" {
		lines = append(lines, renderWith(s.Info, m.infoMsg))
	}
	if m.showFooter {
		lines = append(lines, renderWith(s.Footer, "enter: reload/stop · →: menu · ctrl+e: empty cache reload · esc: quit"))
	}
	return strings.Join(lines, "\n")
}

// renderTabLine draws one toolbar row: indicator, action icon, tab title and
// the action title the button would show on hover.
func (m *Model) renderTabLine(tab browser.Tab, selected bool) string {
	s := m.styles()
	display, _ := m.toolbar.Get(tab.ID)

	indicator := "  "
	indicatorStyle := s.Indicator
	if selected {
		indicator = "> "
		indicatorStyle = s.SelectedIndicator
	}

	glyph := glyphFor(display.Icon)
	title := tab.Title
	if title == "" {
		title = tab.URL
	}
	line := title
	if display.Title != "" {
		line = fmt.Sprintf("%s — %s", title, display.Title)
	}
	if m.width > 4 {
		line = truncate.StringWithTail(line, uint(m.width-4), "…")
	}

	tabStyle := s.Tab
	if tab.State == browser.StateLoading {
		tabStyle = s.TabLoading
	}
	if selected {
		tabStyle = s.SelectedTab
	}
	return renderWith(indicatorStyle, indicator) + renderWith(s.Icon, glyph) + " " + renderWith(tabStyle, line)
}

// renderContextMenu draws the second surface: the per-tab context menu with
// the same icon/title pair the toolbar shows.
func (m *Model) renderContextMenu() []string {
	s := m.styles()
	tab, ok := m.selectedTab()
	if !ok {
		return nil
	}
	display, _ := m.menu.Get(tab.ID)

	title := display.Title
	if title == "" {
		title = tab.Title
	}
	lines := []string{renderWith(s.MenuTitle, fmt.Sprintf("%s %s", glyphFor(display.Icon), title))}
	for i, cmd := range menu.Commands() {
		prefix := "  "
		style := s.MenuItem
		if i == m.menuCursor {
			prefix = "> "
			style = s.MenuSelected
		}
		lines = append(lines, prefix+renderWith(style, cmd.Label))
	}
	return lines
}

func renderWith(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
