package events

import "github.com/tasksgodzilla/godzilla-tui/internal/logging"

type RefreshTracer struct{}

type GatewayTracer struct{}

var (
	Refresh = RefreshTracer{}
	Gateway = GatewayTracer{}
)

func (RefreshTracer) Begin(page string) {
	logging.Trace("refresh.begin", map[string]interface{}{"page": page})
}

func (RefreshTracer) End(elapsedMillis int64, failed bool) {
	logging.Trace("refresh.end", map[string]interface{}{"elapsed_ms": elapsedMillis, "failed": failed})
}

func (RefreshTracer) Coalesced() {
	logging.Trace("refresh.coalesced", nil)
}

func (GatewayTracer) Request(method, path string) {
	logging.Trace("gateway.request", map[string]interface{}{"method": method, "path": path})
}
