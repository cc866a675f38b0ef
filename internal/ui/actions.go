package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tasksgodzilla/godzilla-tui/internal/logging/events"
	"github.com/tasksgodzilla/godzilla-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) runQuickAction(a quickAction) tea.Cmd {
	switch a {
	case quickRunNext:
		m.runNext()
	case quickRetryLatest:
		m.retryLatest()
	case quickRunQA:
		m.runQALatest()
	case quickApprove:
		m.approveLatest()
	case quickOpenPR:
		m.openPullRequest()
	case quickStartProtocol:
		m.protocolAction("start", "Planning enqueued.")
	case quickPauseProtocol:
		m.protocolAction("pause", "Protocol paused.")
	case quickResumeProtocol:
		m.protocolAction("resume", "Protocol resumed.")
	case quickCancelProtocol:
		m.protocolAction("cancel", "Protocol cancelled.")
	case quickImportWorkspace:
		return m.openImportModal()
	case quickSpecAudit:
		return m.openSpecAuditModal()
	case quickConfigure:
		return m.openConfigureModal()
	case quickMenu:
		m.setScreen(ScreenMainMenu)
		m.menuIndex = 0
	}
	return nil
}

// invoke runs one remote action. On success it sets the status line and
// refreshes everything; on failure it records the error and leaves the
// cached lists untouched.
func (m *Model) invoke(name, success string, call func(context.Context) error) {
	events.Action.Run(name)
	if err := call(context.Background()); err != nil {
		m.sess.SetError(err)
		events.Action.Error(name, err)
		return
	}
	m.sess.Status = success
	events.Action.Success(name, success)
	m.refreshAll()
}

// Step and protocol shortcuts are silent no-ops without an applicable
// selection.

func (m *Model) runNext() {
	protocolID, ok := m.sess.SelectedProtocolID()
	if !ok {
		return
	}
	m.invoke("run_next", "Run next enqueued", func(ctx context.Context) error {
		return m.gateway.StepRunNext(ctx, protocolID)
	})
}

func (m *Model) retryLatest() {
	protocolID, ok := m.sess.SelectedProtocolID()
	if !ok {
		return
	}
	m.invoke("retry_latest", "Retry enqueued", func(ctx context.Context) error {
		return m.gateway.StepRetryLatest(ctx, protocolID)
	})
}

func (m *Model) runQALatest() {
	step, ok := m.sess.LastStep()
	if !ok {
		return
	}
	m.invoke("run_qa", "QA enqueued", func(ctx context.Context) error {
		return m.gateway.StepRunQA(ctx, step.ID)
	})
}

func (m *Model) approveLatest() {
	step, ok := m.sess.LastStep()
	if !ok {
		return
	}
	m.invoke("approve", "Approved", func(ctx context.Context) error {
		return m.gateway.StepApprove(ctx, step.ID)
	})
}

func (m *Model) openPullRequest() {
	protocolID, ok := m.sess.SelectedProtocolID()
	if !ok {
		return
	}
	m.invoke("open_pr", "Open PR enqueued", func(ctx context.Context) error {
		return m.gateway.ProtocolOpenPR(ctx, protocolID)
	})
}

func (m *Model) protocolAction(action, success string) {
	protocolID, ok := m.sess.SelectedProtocolID()
	if !ok {
		return
	}
	m.invoke(action, success, func(ctx context.Context) error {
		return m.gateway.ProtocolAction(ctx, protocolID, action)
	})
}

func (m *Model) submitForm(form *Form) {
	switch form.action {
	case actionCreateProject:
		m.submitCreateProject(form)
	case actionCreateProtocol:
		m.submitCreateProtocol(form)
	case actionSpecAudit:
		m.submitSpecAudit(form)
	case actionImportWorkspace:
		m.submitImportWorkspace(form)
	case actionConfigureGateway:
		m.submitConfigureGateway(form)
	case actionFindEvent:
		m.submitFindEvent(form)
	}
}

func (m *Model) submitConfirm(action modalAction) {
	if action == actionDeleteBranch {
		m.submitDeleteBranch()
	}
}

func (m *Model) submitCreateProject(form *Form) {
	name := form.Value(0)
	gitURL := form.Value(1)
	branch := form.Value(2)
	if name == "" || gitURL == "" {
		m.sess.Fail("Name and Git URL required")
		return
	}
	if branch == "" {
		branch = "main"
	}
	events.Action.Run("create_project")
	project, err := m.gateway.CreateProject(context.Background(), name, gitURL, branch)
	if err != nil {
		m.sess.SetError(err)
		events.Action.Error("create_project", err)
		return
	}
	m.sess.Status = fmt.Sprintf("Created project %d", project.ID)
	events.Action.Success("create_project", m.sess.Status)
	m.refreshAll()
}

func (m *Model) submitCreateProtocol(form *Form) {
	projectID, ok := m.sess.SelectedProjectID()
	if !ok {
		m.sess.Fail("Select a project first")
		return
	}
	name := form.Value(0)
	branch := form.Value(1)
	if name == "" {
		m.sess.Fail("Protocol name required")
		return
	}
	if branch == "" {
		branch = "main"
	}
	events.Action.Run("create_protocol")
	run, err := m.gateway.CreateProtocol(context.Background(), projectID, name, branch, optionalString(form.Value(2)))
	if err != nil {
		m.sess.SetError(err)
		events.Action.Error("create_protocol", err)
		return
	}
	// Drop the stale selection so the refresh lands on the new run's list
	// head rather than whatever row happened to be highlighted.
	m.sess.Protocols.ClearSelection()
	m.sess.Status = fmt.Sprintf("Created protocol %d", run.ID)
	events.Action.Success("create_protocol", m.sess.Status)
	m.refreshAll()
}

func (m *Model) submitSpecAudit(form *Form) {
	projectID, err := optionalID(form.Value(0))
	if err != nil {
		m.sess.Fail("Project ID must be a number")
		return
	}
	protocolID, err := optionalID(form.Value(1))
	if err != nil {
		m.sess.Fail("Protocol ID must be a number")
		return
	}
	backfill := strings.HasPrefix(strings.ToLower(form.Value(2)), "y")
	interval, err := optionalID(form.Value(3))
	if err != nil {
		m.sess.Fail("Interval seconds must be a number")
		return
	}
	m.invoke("spec_audit", "Spec audit enqueued", func(ctx context.Context) error {
		return m.gateway.SpecAudit(ctx, projectID, protocolID, backfill, interval)
	})
}

func (m *Model) submitImportWorkspace(form *Form) {
	projectID, ok := m.sess.SelectedProjectID()
	if !ok {
		m.sess.Fail("Select a project first")
		return
	}
	name := form.Value(0)
	path := form.Value(1)
	branch := form.Value(2)
	if name == "" || path == "" {
		m.sess.Fail("Protocol name and workspace path required")
		return
	}
	if branch == "" {
		branch = "main"
	}
	description := optionalString(form.Value(3))
	enqueue := strings.HasPrefix(strings.ToLower(form.Value(4)), "y")
	m.invoke("import_codemachine", "Import enqueued", func(ctx context.Context) error {
		return m.gateway.ImportCodeMachine(ctx, projectID, name, path, branch, description, enqueue)
	})
}

// submitConfigureGateway swaps the client binding in place. It is the one
// bound action that does not refresh, so a bad address never wipes the
// cached lists.
func (m *Model) submitConfigureGateway(form *Form) {
	base := form.Value(0)
	if base == "" {
		return
	}
	m.gateway = m.connect(base, form.Value(1), form.Value(2))
	m.sess.Status = fmt.Sprintf("API base set to %s", base)
	events.Action.Success("configure_gateway", m.sess.Status)
}

func (m *Model) submitFindEvent(form *Form) {
	query := form.Value(0)
	items := m.sess.Events.Items()
	labels := make([]string, 0, len(items))
	for _, ev := range items {
		labels = append(labels, fmt.Sprintf("%s: %s", ev.EventType, ev.Message))
	}
	idx := state.BestMatchIndex(labels, query)
	if idx < 0 {
		m.openModal(&messageModal{text: fmt.Sprintf("No event matches %q", query)})
		return
	}
	m.sess.Events.SetIndex(idx)
	m.sess.Status = fmt.Sprintf("Selected event %d", items[idx].ID)
}

func (m *Model) submitDeleteBranch() {
	branch, ok := m.sess.Branches.Selected()
	if !ok {
		return
	}
	projectID, ok := m.sess.SelectedProjectID()
	if !ok {
		return
	}
	m.invoke("delete_branch", fmt.Sprintf("Deleted branch %s", branch), func(ctx context.Context) error {
		return m.gateway.DeleteBranch(ctx, projectID, branch)
	})
}

func (m *Model) cycleJobFilter() {
	m.sess.JobFilter = state.NextJobFilter(m.sess.JobFilter)
	m.sess.Status = fmt.Sprintf("Job filter: %s", state.FilterLabel(m.sess.JobFilter))
	m.loadQueue()
}

func (m *Model) cycleStepFilter() {
	m.sess.StepFilter = state.NextStepFilter(m.sess.StepFilter)
	m.sess.Status = fmt.Sprintf("Step filter: %s", state.FilterLabel(m.sess.StepFilter))
	m.loadSteps()
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalID(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
