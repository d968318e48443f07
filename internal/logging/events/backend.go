package events

import "github.com/fluxtab/tabaction/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) PollError(kind string, err error) {
	logging.Trace("backend.poll.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (BackendTracer) Recovered(kind string) {
	logging.Trace("backend.recovered", map[string]interface{}{"kind": kind})
}
