package ui

import (
	"fmt"

	"github.com/tasksgodzilla/godzilla-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies the top-level surface the controller renders. Every
// screen except the dashboard owns the whole terminal.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenLogin
	ScreenMainMenu
	ScreenSettingsInfo
	ScreenHelp
	ScreenVersion
	ScreenDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenLogin:
		return "login"
	case ScreenMainMenu:
		return "menu"
	case ScreenSettingsInfo:
		return "settings"
	case ScreenHelp:
		return "help"
	case ScreenVersion:
		return "version"
	case ScreenDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

var welcomeItems = []string{"Start TasksGodzilla", "Settings", "Help", "Version", "Quit"}

var menuItems = []string{"Dashboard", "Configure API/token", "Quit"}

func (m *Model) handleWelcomeKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k", "shift+tab":
		if m.welcomeIndex == 0 {
			m.welcomeIndex = len(welcomeItems) - 1
		} else {
			m.welcomeIndex--
		}
	case "down", "j", "tab":
		m.welcomeIndex = (m.welcomeIndex + 1) % len(welcomeItems)
	case "1", "2", "3", "4", "5":
		m.welcomeIndex = int(key.String()[0] - '1')
	case "enter":
		return m.activateWelcomeItem()
	case "esc", "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) activateWelcomeItem() tea.Cmd {
	switch m.welcomeIndex {
	case 0:
		if m.opts.AutoLogin {
			m.setScreen(ScreenDashboard)
			m.refreshAll()
			return nil
		}
		m.setScreen(ScreenLogin)
		return m.login.Refocus()
	case 1:
		m.setScreen(ScreenSettingsInfo)
	case 2:
		m.setScreen(ScreenHelp)
	case 3:
		m.setScreen(ScreenVersion)
	case 4:
		return tea.Quit
	}
	return nil
}

func (m *Model) handleLoginKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "tab":
		return m.login.FocusNext()
	case "shift+tab":
		return m.login.FocusPrev()
	case "enter":
		return m.submitLogin()
	case "esc":
		return tea.Quit
	default:
		m.login.HandleKey(key)
	}
	return nil
}

func (m *Model) submitLogin() tea.Cmd {
	base := m.login.Value(0)
	if base == "" {
		m.sess.Status = "API base required"
		return nil
	}
	m.gateway = m.connect(base, m.login.Value(1), m.login.Value(2))
	m.sess.Status = fmt.Sprintf("Connected to %s", base)
	m.setScreen(ScreenMainMenu)
	m.menuIndex = 0
	return nil
}

func (m *Model) handleMenuKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k", "shift+tab":
		if m.menuIndex == 0 {
			m.menuIndex = len(menuItems) - 1
		} else {
			m.menuIndex--
		}
	case "down", "j", "tab":
		m.menuIndex = (m.menuIndex + 1) % len(menuItems)
	case "1":
		m.menuIndex = 0
		m.setScreen(ScreenDashboard)
		m.refreshAll()
	case "2":
		m.menuIndex = 1
		return m.openConfigureModal()
	case "3", "q":
		return tea.Quit
	case "enter":
		return m.activateMenuItem()
	case "esc":
		m.setScreen(ScreenLogin)
		return m.login.Refocus()
	}
	return nil
}

func (m *Model) activateMenuItem() tea.Cmd {
	switch m.menuIndex {
	case 0:
		m.setScreen(ScreenDashboard)
		m.refreshAll()
	case 1:
		return m.openConfigureModal()
	case 2:
		return tea.Quit
	}
	return nil
}

func (m *Model) handleInfoKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "m":
		m.setScreen(ScreenMainMenu)
		m.menuIndex = 0
		return nil
	case "esc", "q", "w":
		m.setScreen(ScreenWelcome)
		return nil
	}
	switch m.screen {
	case ScreenSettingsInfo:
		switch key.String() {
		case "c":
			return m.openConfigureModal()
		case "enter":
			m.setScreen(ScreenDashboard)
			m.setPage(state.PageSettings)
			m.refreshAll()
		}
	case ScreenHelp:
		if key.String() == "enter" {
			m.setScreen(ScreenDashboard)
			m.refreshAll()
		}
	}
	return nil
}
