package events

import "github.com/tasksgodzilla/godzilla-tui/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Run(name string) {
	logging.Trace("action.run", map[string]interface{}{"name": name})
}

func (ActionTracer) Success(name, info string) {
	logging.Trace("action.success", map[string]interface{}{"name": name, "info": info})
}

func (ActionTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"name": name, "error": err.Error()})
}
