package events

import "github.com/tasksgodzilla/godzilla-tui/internal/logging"

type UITracer struct{}

type ModalTracer struct{}

var (
	UI    = UITracer{}
	Modal = ModalTracer{}
)

func (UITracer) Key(screen, key string) {
	logging.Trace("ui.key", map[string]interface{}{"screen": screen, "key": key})
}

func (UITracer) Screen(from, to string) {
	logging.Trace("ui.screen", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Page(page string) {
	logging.Trace("ui.page", map[string]interface{}{"page": page})
}

func (ModalTracer) Open(kind, title string) {
	logging.Trace("modal.open", map[string]interface{}{"kind": kind, "title": title})
}

func (ModalTracer) Close(kind, reason string) {
	logging.Trace("modal.close", map[string]interface{}{"kind": kind, "reason": reason})
}
