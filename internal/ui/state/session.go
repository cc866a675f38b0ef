package state

import (
	"encoding/json"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
)

// Session is the single owned snapshot of everything the dashboard shows.
// Handlers mutate it between renders; the view only reads it.
type Session struct {
	Page Page

	Projects     List[api.Project]
	Protocols    List[api.ProtocolRun]
	Steps        List[api.StepRun]
	Events       List[api.Event]
	RecentEvents List[api.Event]
	Branches     List[string]

	QueueStats json.RawMessage
	QueueJobs  []api.QueueJob

	StepFilter string
	JobFilter  string

	Status     string
	LastError  string
	Refreshing bool
}

// NewSession returns a session on the Dashboard page with an idle status.
func NewSession() *Session {
	return &Session{Status: "Ready"}
}

// SelectedProjectID returns the id of the selected project, if any.
func (s *Session) SelectedProjectID() (int64, bool) {
	project, ok := s.Projects.Selected()
	if !ok {
		return 0, false
	}
	return project.ID, true
}

// SelectedProtocolID returns the id of the selected protocol run, if any.
func (s *Session) SelectedProtocolID() (int64, bool) {
	run, ok := s.Protocols.Selected()
	if !ok {
		return 0, false
	}
	return run.ID, true
}

// LastStep returns the final step of the selected protocol's filtered step
// list; step-scoped quick actions aim there.
func (s *Session) LastStep() (api.StepRun, bool) {
	steps := s.Steps.Items()
	if len(steps) == 0 {
		return api.StepRun{}, false
	}
	return steps[len(steps)-1], true
}

// SetError records a failure without clearing the status line.
func (s *Session) SetError(err error) {
	if err == nil {
		return
	}
	s.LastError = err.Error()
}

// Fail records a plain-text failure.
func (s *Session) Fail(message string) { s.LastError = message }

// ClearError drops the recorded failure.
func (s *Session) ClearError() { s.LastError = "" }
