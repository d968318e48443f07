package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across both UI surfaces.
type Styles struct {
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Tab               *lipgloss.Style
	TabLoading        *lipgloss.Style
	SelectedTab       *lipgloss.Style
	Indicator         *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Icon              *lipgloss.Style
	MenuTitle         *lipgloss.Style
	MenuItem          *lipgloss.Style
	MenuSelected      *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	Cursor            *lipgloss.Style
}

var lightStyles = Styles{
	Header:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)),
	Footer:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
	Tab:               ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236"))),
	TabLoading:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true)),
	SelectedTab:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("253")).Bold(true)),
	Indicator:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250"))),
	SelectedIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("253"))),
	Icon:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
	MenuTitle:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)),
	MenuItem:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	MenuSelected:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("253")).Bold(true)),
	Error:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)),
	Info:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("242"))),
	Filter:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	FilterPrompt:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true)),
	Cursor:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Blink(true)),
}

var darkStyles = Styles{
	Header:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
	Footer:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Tab:               ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	TabLoading:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true)),
	SelectedTab:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true)),
	Indicator:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	SelectedIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("238"))),
	Icon:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	MenuTitle:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
	MenuItem:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250"))),
	MenuSelected:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true)),
	Error:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
	Info:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Filter:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	FilterPrompt:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
	Cursor:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Blink(true)),
}

// Light exposes the style set for the light variant.
func Light() *Styles {
	return &lightStyles
}

// Dark exposes the style set for the dark variant.
func Dark() *Styles {
	return &darkStyles
}

// Select returns the style set matching the flag.
func Select(dark bool) *Styles {
	if dark {
		return &darkStyles
	}
	return &lightStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
