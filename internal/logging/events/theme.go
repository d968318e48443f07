package events

import "github.com/fluxtab/tabaction/internal/logging"

type ThemeTracer struct{}

var Theme = ThemeTracer{}

func (ThemeTracer) Changed(dark bool) {
	logging.Trace("theme.changed", map[string]interface{}{"dark": dark})
}

func (ThemeTracer) Refresh(tabs int) {
	logging.Trace("theme.refresh", map[string]interface{}{"tabs": tabs})
}
