package events

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tasksgodzilla/godzilla-tui/internal/logging"
)

func TestAppTracerWritesLifecycleEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	App.Start(map[string]interface{}{"argv": []string{"-trace"}})
	App.Stop("quit")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace log: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, `"event":"app.start"`) {
		t.Fatalf("missing app.start entry:\n%s", log)
	}
	if !strings.Contains(log, `"event":"app.stop"`) || !strings.Contains(log, `"reason":"quit"`) {
		t.Fatalf("missing app.stop entry:\n%s", log)
	}
}

func TestTracersSilentWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(false)
	t.Cleanup(func() { logging.Configure("") })

	UI.Key("dashboard", "q")
	Refresh.Coalesced()
	Action.Run("run_next")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("trace file should not exist when tracing is off, stat err = %v", err)
	}
}
