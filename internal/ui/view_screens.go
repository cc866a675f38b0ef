package ui

import (
	"fmt"
	"strings"
)

const bannerArt = `████████╗ █████╗ ███████╗██╗  ██╗███████╗ ██████╗ 
╚══██╔══╝██╔══██╗██╔════╝██║ ██╔╝██╔════╝██╔═══██╗
   ██║   ███████║███████╗█████╔╝ ███████╗██║   ██║
   ██║   ██╔══██║╚════██║██╔═██╗ ╚════██║██║   ██║
   ██║   ██║  ██║███████║██║  ██╗███████║╚██████╔╝
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝ ╚═════╝ `

func bannerLines() []styledLine {
	rows := strings.Split(bannerArt, "\n")
	lines := make([]styledLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, styledLine{text: row, style: styles.Banner})
	}
	return lines
}

func (m *Model) statusLineText() string {
	return fmt.Sprintf("Status: %s", m.sess.Status)
}

func menuListLines(items []string, index int, width int) []styledLine {
	lines := make([]styledLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, buildItemLine(item, i == index, width))
	}
	return lines
}

func formLines(form *Form) []styledLine {
	fields := form.Fields()
	lines := make([]styledLine, 0, len(fields))
	for i := range fields {
		prefix := "  "
		style := styles.FieldLabel
		if i == form.FocusIndex() {
			prefix = "> "
			style = styles.FieldFocus
		}
		lines = append(lines, styledLine{
			text:  prefix + fields[i].Label + ": " + fields[i].View(),
			style: style,
		})
	}
	return lines
}

func (m *Model) viewWelcome() string {
	lines := bannerLines()
	lines = append(lines,
		styledLine{text: fmt.Sprintf("Fast terminal UI for orchestrator — v%s", m.opts.Version), style: styles.Subtitle},
		styledLine{},
	)
	body := renderLines(applyWidth(lines, m.width))
	pane := renderPane("Choose an option", menuListLines(welcomeItems, m.welcomeIndex, 0), 0, 0)
	footer := renderLines([]styledLine{
		{},
		{text: "Up/Down/Tab select • Enter confirm • 1/2/3/4 shortcuts • q quit", style: styles.Footer},
		{text: m.statusLineText(), style: styles.Status},
	})
	return m.centered(body + "\n" + pane + "\n" + footer)
}

func (m *Model) viewLogin() string {
	lines := bannerLines()
	lines = append(lines,
		styledLine{text: "TasksGodzilla TUI — Login", style: styles.Subtitle},
		styledLine{},
	)
	body := renderLines(applyWidth(lines, m.width))
	pane := renderPane("API connection", formLines(m.login), 0, 0)
	footer := renderLines([]styledLine{
		{},
		{text: "Tab/Shift-Tab move • Enter connect • Esc quit (tokens optional)", style: styles.Footer},
		{text: m.statusLineText(), style: styles.Status},
	})
	return m.centered(body + "\n" + pane + "\n" + footer)
}

func (m *Model) viewMenu() string {
	header := renderLines([]styledLine{
		{text: "TasksGodzilla", style: styles.Banner},
		{text: "Main menu", style: styles.Subtitle},
		{},
	})
	pane := renderPane("Select an option", menuListLines(menuItems, m.menuIndex, 0), 0, 0)
	footer := renderLines([]styledLine{
		{},
		{text: "Up/Down/Tab select • Enter confirm • 1/2/3 shortcuts • Esc back • q quit", style: styles.Footer},
		{text: m.statusLineText(), style: styles.Status},
	})
	return m.centered(header + "\n" + pane + "\n" + footer)
}

func (m *Model) viewSettingsInfo() string {
	lines := []styledLine{
		{text: fmt.Sprintf("API base: %s", m.gateway.BaseURL()), style: styles.DetailBody},
		{text: fmt.Sprintf("API token: %s", setOrDash(m.gateway.HasToken())), style: styles.DetailBody},
		{text: fmt.Sprintf("Project token: %s", setOrDash(m.gateway.HasProjectToken())), style: styles.DetailBody},
		{text: fmt.Sprintf("Refresh interval: %ds", int(m.opts.RefreshInterval.Seconds())), style: styles.DetailBody},
		{text: fmt.Sprintf("Autologin: %s", enabledOrDisabled(m.opts.AutoLogin)), style: styles.DetailBody},
		{},
		{text: "Enter → open dashboard settings tab", style: styles.Footer},
		{text: "c → configure API/token • m → main menu • q/Esc → back", style: styles.Footer},
	}
	return m.centered(renderPane("Settings", lines, 0, 0))
}

func (m *Model) viewHelp() string {
	width := m.width - 8
	body := renderMarkdown(helpMarkdown, width)
	lines := make([]styledLine, 0, 32)
	for _, row := range strings.Split(strings.Trim(body, "\n"), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines,
		styledLine{},
		styledLine{text: "Enter → dashboard • m → main menu • w → welcome • q/Esc → back", style: styles.Footer},
	)
	return m.centered(renderPane("Help", lines, 0, 0))
}

func (m *Model) viewVersion() string {
	lines := []styledLine{
		{text: fmt.Sprintf("TasksGodzilla TUI v%s", m.opts.Version), style: styles.DetailBody},
		{text: "Terminal client for the TasksGodzilla orchestrator.", style: styles.DetailBody},
		{},
		{text: "m → main menu • q/Esc → back", style: styles.Footer},
	}
	return m.centered(renderPane("Version", lines, 0, 0))
}

func setOrDash(set bool) string {
	if set {
		return "set"
	}
	return "-"
}

func enabledOrDisabled(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
