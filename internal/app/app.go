package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluxtab/tabaction/internal/action"
	"github.com/fluxtab/tabaction/internal/backend"
	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/icon"
	"github.com/fluxtab/tabaction/internal/platform"
	"github.com/fluxtab/tabaction/internal/theme"
	"github.com/fluxtab/tabaction/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Endpoint   string
	Interval   time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	DarkThemes []string
}

// DefaultInterval is the host poll cadence when none is configured.
const DefaultInterval = 150 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	client := browser.NewClient(cfg.Endpoint)
	watcher := backend.NewWatcher(client, interval)
	defer watcher.Stop()

	themes := theme.NewWatcher(cfg.DarkThemes)
	titles := action.NewTitles()
	toolbar := action.NewPanel("toolbar")
	menuPanel := action.NewPanel("context-menu")
	ctrl := action.NewController(client, themes, titles, icon.ClipLength, toolbar, menuPanel)

	model := ui.NewModel(watcher, ctrl, themes, toolbar, menuPanel, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	ctrl.SetNotify(func() {
		program.Send(ui.RefreshMsg{})
	})

	detectCtx, cancelDetect := context.WithCancel(context.Background())
	defer cancelDetect()
	go func() {
		label := platform.Detect(detectCtx, client)
		titles.SetIdleShortcut(label)
		ctrl.RefreshTitles()
		program.Send(ui.RefreshMsg{})
	}()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
