package ui

import (
	"github.com/tasksgodzilla/godzilla-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const dashboardHelpStatus = "Keys: tab/shift+tab/←/→ pages • arrows/j/k move • r refresh • q quit • " +
	"n run next • t retry • y QA • a approve • o open PR • s start • p pause • e resume • x cancel • " +
	"g new project • R new protocol • i import CM • A spec audit • c config • b reload branches • " +
	"d delete branch • J cycle job filter • [/] branch cycle"

func (m *Model) handleDashboardKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "r":
		m.refreshAll()
	case "m":
		m.setScreen(ScreenMainMenu)
		m.menuIndex = 0
	case "w":
		m.setScreen(ScreenWelcome)
		m.welcomeIndex = 0
	case "h", "?":
		m.sess.Status = dashboardHelpStatus
	case "g":
		return m.openProjectModal()
	case "R":
		return m.openProtocolModal()
	case "c":
		return m.openConfigureModal()
	case "i":
		return m.openImportModal()
	case "A":
		return m.openSpecAuditModal()
	case "/":
		return m.openFindEventModal()
	case "enter":
		m.openActionPalette()
	case "b":
		m.loadBranches()
	case "d":
		m.openDeleteBranchModal()
	case "J":
		m.cycleJobFilter()
	case "f":
		m.cycleStepFilter()
	case "tab", "right":
		m.setPage(m.sess.Page.Next())
	case "shift+tab", "left":
		m.setPage(m.sess.Page.Prev())
	case "1", "2", "3", "4", "5", "6", "7":
		if page, ok := state.PageAt(int(key.String()[0] - '0')); ok {
			m.setPage(page)
		}
	case "down", "j":
		m.moveSelection(1)
		m.refreshSelection()
	case "up", "k":
		m.moveSelection(-1)
		m.refreshSelection()
	case "[":
		m.sess.Branches.Move(-1)
	case "]":
		m.sess.Branches.Move(1)
	case "n":
		m.runNext()
	case "t":
		m.retryLatest()
	case "y":
		m.runQALatest()
	case "a":
		m.approveLatest()
	case "o":
		m.openPullRequest()
	case "s":
		m.protocolAction("start", "Planning enqueued.")
	case "p":
		m.protocolAction("pause", "Protocol paused.")
	case "e":
		m.protocolAction("resume", "Protocol resumed.")
	case "x":
		m.protocolAction("cancel", "Protocol cancelled.")
	}
	return nil
}

// moveSelection moves the list the current page navigates. The dashboard and
// projects pages drive the project selection; steps and events pages drive
// their own lists.
func (m *Model) moveSelection(delta int) {
	switch m.sess.Page {
	case state.PageDashboard, state.PageProjects:
		m.sess.Projects.Move(delta)
	case state.PageProtocols:
		m.sess.Protocols.Move(delta)
	case state.PageSteps:
		m.sess.Steps.Move(delta)
	case state.PageEvents:
		m.sess.Events.Move(delta)
	case state.PageQueues:
		// The branch cursor moves only once [ or ] established a selection.
		if _, ok := m.sess.Branches.Index(); ok {
			m.sess.Branches.Move(delta)
		}
	}
}
