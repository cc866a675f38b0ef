package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer construction walks the whole style tree, so the last one is cached
// and rebuilt only when the wrap width changes. WithStandardStyle is used
// instead of WithAutoStyle, which can block on terminal capability queries.
var (
	mdRenderer *glamour.TermRenderer
	mdWidth    int
)

func renderMarkdown(text string, width int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	if mdRenderer == nil || mdWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		mdRenderer = r
		mdWidth = width
	}
	out, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

const helpMarkdown = `# Help

## Navigation

tab/shift-tab or left/right cycle pages, 1-7 jump, up/down or j/k move,
m main menu, w welcome, q/Esc back.

## Pages

Dashboard, Projects, Protocols, Steps, Events, Queues, Settings.
Dashboard combines projects, protocols, steps and events. Steps and Events
show events scoped to the selected protocol. Queues shows worker stats and
jobs.

## Actions

Enter opens the action palette. n run next, t retry, y QA, a approve,
o open PR, s start, p pause, e resume, x cancel, f step filter,
J job filter, [ and ] branch cursor, r refresh.

## Modals & CRUD

g new project, R new protocol, i import CodeMachine, A spec audit,
c configure tokens, b reload branches, d delete branch (selected),
/ find event.

## Welcome / Menu

Welcome: Start TasksGodzilla, Settings, Help, Version, Quit.
Main menu: Dashboard, Configure API/token, Quit.

## Environment

TASKSGODZILLA_API_BASE, TASKSGODZILLA_API_TOKEN, TASKSGODZILLA_PROJECT_TOKEN.
TASKSGODZILLA_TUI_AUTOLOGIN (default 1), TASKSGODZILLA_TUI_REFRESH_SECS
(default 4), TASKSGODZILLA_TUI_REQUEST_TIMEOUT, TASKSGODZILLA_TUI_LOG_FILE,
TASKSGODZILLA_TUI_TRACE, TASKSGODZILLA_TUI_CONFIG.
`
