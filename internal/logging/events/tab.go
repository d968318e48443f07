package events

import "github.com/fluxtab/tabaction/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Created(id int, title string, initial bool) {
	logging.Trace("tab.created", map[string]interface{}{"id": id, "title": title, "initial": initial})
}

func (TabTracer) Updated(id int, title string, state string) {
	logging.Trace("tab.updated", map[string]interface{}{"id": id, "title": title, "state": state})
}

func (TabTracer) Navigation(id, frame int, kind string) {
	logging.Trace("tab.navigation", map[string]interface{}{"id": id, "frame": frame, "kind": kind})
}

func (TabTracer) Animate(id int, asset string) {
	logging.Trace("tab.animate", map[string]interface{}{"id": id, "asset": asset})
}

func (TabTracer) Settle(id int, asset string) {
	logging.Trace("tab.settle", map[string]interface{}{"id": id, "asset": asset})
}

func (TabTracer) Skip(id int, asset string) {
	logging.Trace("tab.skip", map[string]interface{}{"id": id, "asset": asset})
}

func (TabTracer) TitleDeferred(id int) {
	logging.Trace("tab.title.deferred", map[string]interface{}{"id": id})
}

func (TabTracer) Pruned(ids []int) {
	logging.Trace("tab.pruned", map[string]interface{}{"ids": ids})
}
