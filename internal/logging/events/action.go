package events

import "github.com/fluxtab/tabaction/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Click(id int, state string) {
	logging.Trace("action.click", map[string]interface{}{"id": id, "state": state})
}

func (ActionTracer) Abort(id int) {
	logging.Trace("action.abort", map[string]interface{}{"id": id})
}

func (ActionTracer) AbortDenied(id int, err error) {
	logging.Trace("action.abort.denied", map[string]interface{}{"id": id, "error": err.Error()})
}

func (ActionTracer) Reload(id int, bypassCache bool) {
	logging.Trace("action.reload", map[string]interface{}{"id": id, "bypassCache": bypassCache})
}

func (ActionTracer) Command(id int, command string) {
	logging.Trace("action.command", map[string]interface{}{"id": id, "command": command})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
