package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
	"github.com/tasksgodzilla/godzilla-tui/internal/logging/events"
	"github.com/tasksgodzilla/godzilla-tui/internal/ui/state"
)

const recentEventLimit = 50

// refreshAll reloads every list in dependency order. Each load isolates its
// own failure: a dead endpoint fills the error slot but never stops the
// loads after it.
func (m *Model) refreshAll() {
	if m.screen != ScreenDashboard {
		return
	}
	m.sess.Refreshing = true
	m.sess.ClearError()
	m.sess.Status = "Refreshing..."
	events.Refresh.Begin(m.sess.Page.String())
	start := time.Now()
	m.loadProjects()
	m.loadProtocols()
	m.loadSteps()
	m.loadEvents()
	m.loadRecentEvents()
	m.loadQueue()
	m.loadBranches()
	m.sess.Refreshing = false
	elapsed := time.Since(start)
	m.sess.Status = fmt.Sprintf("Refreshed in %dms", elapsed.Milliseconds())
	events.Refresh.End(elapsed.Milliseconds(), m.sess.LastError != "")
}

// refreshSelection reloads the lists downstream of the selection the current
// page just moved.
func (m *Model) refreshSelection() {
	switch m.sess.Page {
	case state.PageDashboard, state.PageProjects:
		m.loadProtocols()
		m.loadSteps()
		m.loadEvents()
		m.loadBranches()
	case state.PageProtocols:
		m.loadSteps()
		m.loadEvents()
	case state.PageSteps:
		m.loadEvents()
	}
}

func (m *Model) loadProjects() {
	data, err := m.gateway.Projects(context.Background())
	if err != nil {
		m.sess.SetError(err)
		return
	}
	m.sess.Projects.Replace(data, state.KeepFirst)
}

func (m *Model) loadProtocols() {
	projectID, ok := m.sess.SelectedProjectID()
	if !ok {
		m.sess.Protocols.Clear()
		return
	}
	data, err := m.gateway.Protocols(context.Background(), projectID)
	if err != nil {
		m.sess.SetError(err)
		return
	}
	m.sess.Protocols.Replace(data, state.KeepFirst)
}

func (m *Model) loadSteps() {
	protocolID, ok := m.sess.SelectedProtocolID()
	if !ok {
		m.sess.Steps.Clear()
		return
	}
	data, err := m.gateway.Steps(context.Background(), protocolID)
	if err != nil {
		m.sess.SetError(err)
		return
	}
	// Filter into a fresh slice; the fetched one stays caller-owned.
	if filter := m.sess.StepFilter; filter != "" {
		filtered := make([]api.StepRun, 0, len(data))
		for _, step := range data {
			if step.Status == filter {
				filtered = append(filtered, step)
			}
		}
		data = filtered
	}
	m.sess.Steps.Replace(data, state.KeepLast)
}

func (m *Model) loadEvents() {
	protocolID, ok := m.sess.SelectedProtocolID()
	if !ok {
		m.sess.Events.Clear()
		return
	}
	data, err := m.gateway.Events(context.Background(), protocolID)
	if err != nil {
		m.sess.SetError(err)
		return
	}
	m.sess.Events.Replace(data, state.KeepLast)
}

func (m *Model) loadRecentEvents() {
	data, err := m.gateway.RecentEvents(context.Background(), recentEventLimit)
	if err != nil {
		m.sess.SetError(err)
		return
	}
	m.sess.RecentEvents.Replace(data, state.KeepFirst)
}

// loadQueue fetches stats and jobs independently so one failing endpoint
// does not blank the other half of the page.
func (m *Model) loadQueue() {
	stats, err := m.gateway.QueueStats(context.Background())
	if err != nil {
		m.sess.SetError(err)
	} else {
		m.sess.QueueStats = stats
	}
	jobs, err := m.gateway.QueueJobs(context.Background(), m.sess.JobFilter)
	if err != nil {
		m.sess.SetError(err)
		return
	}
	m.sess.QueueJobs = jobs
}

func (m *Model) loadBranches() {
	projectID, ok := m.sess.SelectedProjectID()
	if !ok {
		m.sess.Branches.Clear()
		return
	}
	data, err := m.gateway.Branches(context.Background(), projectID)
	if err != nil {
		m.sess.SetError(err)
		return
	}
	m.sess.Branches.Replace(data, state.KeepFirst)
}
