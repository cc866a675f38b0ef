package ui

import (
	"fmt"
	"strconv"

	"github.com/tasksgodzilla/godzilla-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// modalAction names the submit handler bound to a form or confirm modal.
type modalAction int

const (
	actionNone modalAction = iota
	actionCreateProject
	actionCreateProtocol
	actionSpecAudit
	actionImportWorkspace
	actionConfigureGateway
	actionDeleteBranch
	actionFindEvent
)

// modal is the closed set of dialog kinds. While one is open it owns all key
// input; screen and page handlers never see those keys.
type modal interface {
	kind() string
	title() string
}

type formModal struct{ form *Form }

func (*formModal) kind() string    { return "form" }
func (f *formModal) title() string { return f.form.Title }

type confirmModal struct {
	heading string
	message string
	action  modalAction
}

func (*confirmModal) kind() string    { return "confirm" }
func (c *confirmModal) title() string { return c.heading }

type paletteModal struct {
	items []quickAction
	index int
}

func (*paletteModal) kind() string  { return "palette" }
func (*paletteModal) title() string { return "Action palette" }

type messageModal struct{ text string }

func (*messageModal) kind() string  { return "message" }
func (*messageModal) title() string { return "Message" }

// quickAction is one palette entry.
type quickAction int

const (
	quickRunNext quickAction = iota
	quickRetryLatest
	quickRunQA
	quickApprove
	quickOpenPR
	quickStartProtocol
	quickPauseProtocol
	quickResumeProtocol
	quickCancelProtocol
	quickImportWorkspace
	quickSpecAudit
	quickConfigure
	quickMenu
)

func (a quickAction) label() string {
	switch a {
	case quickRunNext:
		return "Run next (n)"
	case quickRetryLatest:
		return "Retry latest (t)"
	case quickRunQA:
		return "Run QA (y)"
	case quickApprove:
		return "Approve (a)"
	case quickOpenPR:
		return "Open PR (o)"
	case quickStartProtocol:
		return "Start protocol (s)"
	case quickPauseProtocol:
		return "Pause protocol (p)"
	case quickResumeProtocol:
		return "Resume protocol (e)"
	case quickCancelProtocol:
		return "Cancel protocol (x)"
	case quickImportWorkspace:
		return "Import CodeMachine (i)"
	case quickSpecAudit:
		return "Spec audit (A)"
	case quickConfigure:
		return "Configure API/token (c)"
	case quickMenu:
		return "Main menu (m)"
	default:
		return "Unknown"
	}
}

func paletteActions() []quickAction {
	return []quickAction{
		quickRunNext,
		quickRetryLatest,
		quickRunQA,
		quickApprove,
		quickOpenPR,
		quickStartProtocol,
		quickPauseProtocol,
		quickResumeProtocol,
		quickCancelProtocol,
		quickImportWorkspace,
		quickSpecAudit,
		quickConfigure,
		quickMenu,
	}
}

func (m *Model) openModal(mod modal) {
	m.modal = mod
	events.Modal.Open(mod.kind(), mod.title())
}

func (m *Model) closeModal(reason string) {
	if m.modal == nil {
		return
	}
	events.Modal.Close(m.modal.kind(), reason)
	m.modal = nil
}

func (m *Model) openProjectModal() tea.Cmd {
	form := newForm("Create project", actionCreateProject,
		newField("Name", ""),
		newField("Git URL", ""),
		newField("Base branch", "main"),
	)
	m.openModal(&formModal{form: form})
	return form.Refocus()
}

func (m *Model) openProtocolModal() tea.Cmd {
	form := newForm("Create protocol", actionCreateProtocol,
		newField("Protocol name", ""),
		newField("Base branch", "main"),
		newField("Description (optional)", ""),
	)
	m.openModal(&formModal{form: form})
	return form.Refocus()
}

func (m *Model) openConfigureModal() tea.Cmd {
	form := newForm("Configure API/token", actionConfigureGateway,
		newField("API base", m.gateway.BaseURL()),
		newSecretField("API token (optional)"),
		newSecretField("Project token (optional)"),
	)
	m.openModal(&formModal{form: form})
	return form.Refocus()
}

func (m *Model) openSpecAuditModal() tea.Cmd {
	projectDefault := ""
	if id, ok := m.sess.SelectedProjectID(); ok {
		projectDefault = strconv.FormatInt(id, 10)
	}
	protocolDefault := ""
	if id, ok := m.sess.SelectedProtocolID(); ok {
		protocolDefault = strconv.FormatInt(id, 10)
	}
	form := newForm("Spec audit", actionSpecAudit,
		newField("Project ID (optional)", projectDefault),
		newField("Protocol ID (optional)", protocolDefault),
		newField("Backfill? (y/N)", "y"),
		newField("Interval seconds (optional)", ""),
	)
	m.openModal(&formModal{form: form})
	return form.Refocus()
}

func (m *Model) openImportModal() tea.Cmd {
	form := newForm("Import CodeMachine", actionImportWorkspace,
		newField("Protocol name", ""),
		newField("Workspace path", ""),
		newField("Base branch", "main"),
		newField("Description (optional)", ""),
		newField("Enqueue? (y/N)", "y"),
	)
	m.openModal(&formModal{form: form})
	return form.Refocus()
}

func (m *Model) openFindEventModal() tea.Cmd {
	form := newForm("Find event", actionFindEvent,
		newField("Query", ""),
	)
	m.openModal(&formModal{form: form})
	return form.Refocus()
}

// openDeleteBranchModal asks for confirmation. Without a selected branch the
// shortcut does nothing, so the confirm can never fire on an empty list.
func (m *Model) openDeleteBranchModal() {
	branch, ok := m.sess.Branches.Selected()
	if !ok {
		return
	}
	m.openModal(&confirmModal{
		heading: "Delete branch",
		message: fmt.Sprintf("Delete remote branch '%s'?", branch),
		action:  actionDeleteBranch,
	})
}

func (m *Model) openActionPalette() {
	m.openModal(&paletteModal{items: paletteActions()})
}

func (m *Model) handleModalKey(key tea.KeyMsg) tea.Cmd {
	switch mod := m.modal.(type) {
	case *messageModal:
		switch key.String() {
		case "enter", "esc":
			m.closeModal("dismiss")
		}
	case *confirmModal:
		switch key.String() {
		case "enter":
			action := mod.action
			m.closeModal("submit")
			m.submitConfirm(action)
		case "esc":
			m.closeModal("escape")
		}
	case *paletteModal:
		switch key.String() {
		case "up", "k":
			if mod.index == 0 {
				mod.index = len(mod.items) - 1
			} else {
				mod.index--
			}
		case "down", "j":
			mod.index = (mod.index + 1) % len(mod.items)
		case "enter":
			action := mod.items[mod.index]
			m.closeModal("submit")
			return m.runQuickAction(action)
		case "esc":
			m.closeModal("escape")
		}
	case *formModal:
		switch key.String() {
		case "tab":
			return mod.form.FocusNext()
		case "shift+tab":
			return mod.form.FocusPrev()
		case "enter":
			form := mod.form
			m.closeModal("submit")
			m.submitForm(form)
		case "esc":
			m.closeModal("escape")
		default:
			mod.form.HandleKey(key)
		}
	}
	return nil
}
