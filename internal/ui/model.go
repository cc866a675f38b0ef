package ui

import (
	"reflect"
	"time"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
	"github.com/tasksgodzilla/godzilla-tui/internal/logging/events"
	"github.com/tasksgodzilla/godzilla-tui/internal/theme"
	"github.com/tasksgodzilla/godzilla-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// tickMsg drives the periodic dashboard refresh.
type tickMsg time.Time

// Options carry the launch configuration into the controller.
type Options struct {
	AutoLogin       bool
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
	Version         string
}

// Model implements the Bubble Tea model for the session controller. All
// gateway calls run synchronously inside Update, so a remote action always
// completes before the next message is handled.
type Model struct {
	gateway Gateway
	connect func(base, token, projectToken string) Gateway

	sess   *state.Session
	screen Screen

	welcomeIndex int
	menuIndex    int
	login        *Form
	modal        modal

	opts   Options
	width  int
	height int

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the controller on the welcome screen.
func NewModel(gateway Gateway, opts Options) *Model {
	m := &Model{
		gateway: gateway,
		sess:    state.NewSession(),
		screen:  ScreenWelcome,
		opts:    opts,
	}
	m.connect = func(base, token, projectToken string) Gateway {
		return api.NewClient(base, token, projectToken, opts.RequestTimeout)
	}
	m.login = newLoginForm(gateway.BaseURL())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}

// handleTickMsg refreshes the dashboard and re-arms the ticker. Because the
// next tick is scheduled only after the refresh completed, a slow gateway
// stretches the interval instead of stacking refreshes.
func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	if m.sess.Refreshing {
		events.Refresh.Coalesced()
		return m.tickCmd()
	}
	m.refreshAll()
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	if m.opts.RefreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.screen.String(), key.String())
	if m.modal != nil {
		return m.handleModalKey(key)
	}
	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKey(key)
	case ScreenLogin:
		return m.handleLoginKey(key)
	case ScreenMainMenu:
		return m.handleMenuKey(key)
	case ScreenSettingsInfo, ScreenHelp, ScreenVersion:
		return m.handleInfoKey(key)
	default:
		return m.handleDashboardKey(key)
	}
}

func (m *Model) setScreen(s Screen) {
	if s == m.screen {
		return
	}
	events.UI.Screen(m.screen.String(), s.String())
	m.screen = s
}

func (m *Model) setPage(p state.Page) {
	if p == m.sess.Page {
		return
	}
	m.sess.Page = p
	events.UI.Page(p.String())
}
