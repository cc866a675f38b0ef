package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeGateway serves canned data and records every call in order. errs maps a
// method name to the error that method should return.
type fakeGateway struct {
	base         string
	token        bool
	projectToken bool

	projects  []api.Project
	protocols map[int64][]api.ProtocolRun
	steps     map[int64][]api.StepRun
	events    map[int64][]api.Event
	recent    []api.Event
	stats     json.RawMessage
	jobs      map[string][]api.QueueJob
	branches  map[int64][]string

	created    api.Project
	createdRun api.ProtocolRun
	errs       map[string]error
	calls      []string
}

func (f *fakeGateway) record(key, entry string) error {
	f.calls = append(f.calls, entry)
	if f.errs == nil {
		return nil
	}
	return f.errs[key]
}

func (f *fakeGateway) Projects(ctx context.Context) ([]api.Project, error) {
	if err := f.record("projects", "projects"); err != nil {
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeGateway) Protocols(ctx context.Context, projectID int64) ([]api.ProtocolRun, error) {
	if err := f.record("protocols", fmt.Sprintf("protocols(%d)", projectID)); err != nil {
		return nil, err
	}
	return f.protocols[projectID], nil
}

func (f *fakeGateway) Steps(ctx context.Context, protocolID int64) ([]api.StepRun, error) {
	if err := f.record("steps", fmt.Sprintf("steps(%d)", protocolID)); err != nil {
		return nil, err
	}
	return f.steps[protocolID], nil
}

func (f *fakeGateway) Events(ctx context.Context, protocolID int64) ([]api.Event, error) {
	if err := f.record("events", fmt.Sprintf("events(%d)", protocolID)); err != nil {
		return nil, err
	}
	return f.events[protocolID], nil
}

func (f *fakeGateway) RecentEvents(ctx context.Context, limit int) ([]api.Event, error) {
	if err := f.record("recent", fmt.Sprintf("recent(%d)", limit)); err != nil {
		return nil, err
	}
	return f.recent, nil
}

func (f *fakeGateway) QueueStats(ctx context.Context) (json.RawMessage, error) {
	if err := f.record("queue_stats", "queue_stats"); err != nil {
		return nil, err
	}
	return f.stats, nil
}

func (f *fakeGateway) QueueJobs(ctx context.Context, status string) ([]api.QueueJob, error) {
	if err := f.record("queue_jobs", fmt.Sprintf("queue_jobs(%s)", status)); err != nil {
		return nil, err
	}
	return f.jobs[status], nil
}

func (f *fakeGateway) Branches(ctx context.Context, projectID int64) ([]string, error) {
	if err := f.record("branches", fmt.Sprintf("branches(%d)", projectID)); err != nil {
		return nil, err
	}
	return f.branches[projectID], nil
}

func (f *fakeGateway) CreateProject(ctx context.Context, name, gitURL, baseBranch string) (api.Project, error) {
	if err := f.record("create_project", fmt.Sprintf("create_project(%s,%s,%s)", name, gitURL, baseBranch)); err != nil {
		return api.Project{}, err
	}
	return f.created, nil
}

func (f *fakeGateway) CreateProtocol(ctx context.Context, projectID int64, protocolName, baseBranch string, description *string) (api.ProtocolRun, error) {
	if err := f.record("create_protocol", fmt.Sprintf("create_protocol(%d,%s,%s)", projectID, protocolName, baseBranch)); err != nil {
		return api.ProtocolRun{}, err
	}
	return f.createdRun, nil
}

func (f *fakeGateway) DeleteBranch(ctx context.Context, projectID int64, branch string) error {
	return f.record("delete_branch", fmt.Sprintf("delete_branch(%d,%s)", projectID, branch))
}

func (f *fakeGateway) ProtocolAction(ctx context.Context, protocolID int64, action string) error {
	return f.record("protocol_action", fmt.Sprintf("protocol_action(%d,%s)", protocolID, action))
}

func (f *fakeGateway) ProtocolOpenPR(ctx context.Context, protocolID int64) error {
	return f.record("open_pr", fmt.Sprintf("open_pr(%d)", protocolID))
}

func (f *fakeGateway) StepRunNext(ctx context.Context, protocolID int64) error {
	return f.record("run_next", fmt.Sprintf("run_next(%d)", protocolID))
}

func (f *fakeGateway) StepRetryLatest(ctx context.Context, protocolID int64) error {
	return f.record("retry", fmt.Sprintf("retry(%d)", protocolID))
}

func (f *fakeGateway) StepRunQA(ctx context.Context, stepID int64) error {
	return f.record("run_qa", fmt.Sprintf("run_qa(%d)", stepID))
}

func (f *fakeGateway) StepApprove(ctx context.Context, stepID int64) error {
	return f.record("approve", fmt.Sprintf("approve(%d)", stepID))
}

func (f *fakeGateway) SpecAudit(ctx context.Context, projectID, protocolID *int64, backfill bool, intervalSeconds *int64) error {
	return f.record("spec_audit", fmt.Sprintf("spec_audit(%s,%s,%t,%s)", int64Label(projectID), int64Label(protocolID), backfill, int64Label(intervalSeconds)))
}

func (f *fakeGateway) ImportCodeMachine(ctx context.Context, projectID int64, protocolName, workspacePath, baseBranch string, description *string, enqueue bool) error {
	return f.record("import", fmt.Sprintf("import(%d,%s,%s,%t)", projectID, protocolName, workspacePath, enqueue))
}

func (f *fakeGateway) BaseURL() string       { return f.base }
func (f *fakeGateway) HasToken() bool        { return f.token }
func (f *fakeGateway) HasProjectToken() bool { return f.projectToken }

func int64Label(v *int64) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%d", *v)
}

// seededGateway returns a fake with two projects, protocol runs for both, and
// steps, events, queue data and branches for the first run.
func seededGateway() *fakeGateway {
	return &fakeGateway{
		base:  "http://api.test",
		token: true,
		projects: []api.Project{
			{ID: 1, Name: "demo", GitURL: "https://git.test/demo.git", BaseBranch: "main"},
			{ID: 2, Name: "beta", BaseBranch: "develop"},
		},
		protocols: map[int64][]api.ProtocolRun{
			1: {
				{ID: 10, ProjectID: 1, ProtocolName: "standard", Status: "running", BaseBranch: "main"},
				{ID: 11, ProjectID: 1, ProtocolName: "hotfix", Status: "paused", BaseBranch: "main"},
			},
			2: {
				{ID: 20, ProjectID: 2, ProtocolName: "qa-sweep", Status: "pending", BaseBranch: "develop"},
			},
		},
		steps: map[int64][]api.StepRun{
			10: {
				{ID: 101, ProtocolRunID: 10, StepIndex: 0, StepName: "plan", Status: "succeeded"},
				{ID: 102, ProtocolRunID: 10, StepIndex: 1, StepName: "build", Status: "running", Retries: 1},
			},
		},
		events: map[int64][]api.Event{
			10: {
				{ID: 1001, ProtocolRunID: 10, EventType: "step_started", Message: "plan started", CreatedAt: "2026-08-20T10:00:00Z"},
				{ID: 1002, ProtocolRunID: 10, EventType: "step_finished", Message: "plan finished", CreatedAt: "2026-08-20T10:05:00Z", Metadata: json.RawMessage(`{"duration_ms":412}`)},
			},
		},
		recent: []api.Event{
			{ID: 2001, ProtocolRunID: 10, EventType: "job_enqueued", Message: "build queued", CreatedAt: "2026-08-20T10:06:00Z"},
		},
		stats: json.RawMessage(`{"queued":3,"running":1}`),
		jobs: map[string][]api.QueueJob{
			"":       {{JobID: "job-1", Status: "running", EnqueuedAt: "2026-08-20T09:00:00Z"}},
			"queued": {{JobID: "job-2", Status: "queued"}},
		},
		branches: map[int64][]string{
			1: {"main", "feature/login"},
		},
	}
}

// newTestModel builds a model with auto refresh disabled so no timer commands
// are produced.
func newTestModel(gw Gateway) *Model {
	return NewModel(gw, Options{Version: "0.0.0-test", RequestTimeout: time.Second})
}

// dashboardHarness returns a harness already on the dashboard with the seeded
// data loaded and the call log cleared.
func dashboardHarness(gw *fakeGateway) *Harness {
	model := newTestModel(gw)
	model.setScreen(ScreenDashboard)
	model.refreshAll()
	gw.calls = nil
	return NewHarness(model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(h *Harness, keys ...string) {
	for _, k := range keys {
		h.Send(key(k))
	}
}

func typeText(h *Harness, text string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}
