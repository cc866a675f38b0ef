package ui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
	"github.com/tasksgodzilla/godzilla-tui/internal/format/table"
	"github.com/tasksgodzilla/godzilla-tui/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
)

const eventDisplayLimit = 30

func (m *Model) viewDashboard() string {
	bodyHeight := 0
	if m.height > 0 {
		// tabs row, action bar title plus two hint rows, status row
		bodyHeight = m.height - 5
		if bodyHeight < 3 {
			bodyHeight = 3
		}
	}
	sections := []string{
		m.renderTabs(),
		m.renderActionBar(),
		m.renderBody(bodyHeight),
		m.renderStatusLine(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, 8)
	for _, page := range state.Pages() {
		style := styles.Tab
		if page == m.sess.Page {
			style = styles.TabActive
		}
		parts = append(parts, style.Render(page.String()))
	}
	return strings.Join(parts, "")
}

func (m *Model) renderActionBar() string {
	primary, secondary := actionHints(m.sess.Page)
	title := styles.PaneTitle.Render(fmt.Sprintf("Actions — %s", m.sess.Page))
	return title + "\n" + hintLine(primary) + "\n" + hintLine(secondary)
}

func actionHints(page state.Page) ([][2]string, [][2]string) {
	switch page {
	case state.PageProjects:
		return [][2]string{{"g", "New project"}, {"R", "New protocol"}, {"i", "Import CM"}, {"A", "Spec audit"}},
			[][2]string{{"b", "Reload branches"}, {"d", "Delete branch"}, {"c", "Configure"}, {"m", "Menu"}, {"q", "Quit"}}
	case state.PageEvents:
		return [][2]string{{"Enter", "Action palette"}, {"j/k", "Select event"}, {"/", "Find event"}},
			[][2]string{{"r", "Refresh"}, {"m", "Menu"}, {"q", "Quit"}}
	case state.PageQueues:
		return [][2]string{{"J", "Cycle job filter"}},
			[][2]string{{"r", "Refresh"}, {"m", "Menu"}, {"q", "Quit"}}
	case state.PageSettings:
		return [][2]string{{"c", "Configure API/token"}},
			[][2]string{{"m", "Menu"}, {"q", "Quit"}}
	default:
		return [][2]string{
				{"Enter", "Action palette"}, {"n", "Run next"}, {"t", "Retry"}, {"y", "QA"},
				{"a", "Approve"}, {"o", "Open PR"}, {"s", "Start"}, {"p", "Pause"},
				{"e", "Resume"}, {"x", "Cancel"},
			},
			[][2]string{
				{"f", "Step filter"}, {"J", "Job filter"}, {"[ / ]", "Branch"},
				{"r", "Refresh"}, {"m", "Menu"}, {"q", "Quit"},
			}
	}
}

func hintLine(hints [][2]string) string {
	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		parts = append(parts, styles.FieldFocus.Render(hint[0])+" "+styles.Footer.Render(hint[1]))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderBody(height int) string {
	switch m.sess.Page {
	case state.PageProjects:
		left := m.columnWidth(50)
		right := m.remainderWidth(left)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderPane("Projects", projectLines(&m.sess.Projects, paneItemWidth(left)), left, height),
			renderPane("Branches", branchLines(&m.sess.Branches, paneItemWidth(right)), right, height),
		)
	case state.PageProtocols:
		return renderPane("Protocols", protocolLines(&m.sess.Protocols, paneItemWidth(m.width)), m.width, height)
	case state.PageSteps:
		left := m.columnWidth(50)
		right := m.remainderWidth(left)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderPane(m.stepsPaneTitle(), stepLines(&m.sess.Steps, paneItemWidth(left)), left, height),
			renderPane("Events", scopedEventLines(&m.sess.Events, paneItemWidth(right)), right, height),
		)
	case state.PageEvents:
		topHeight, detailHeight := splitHeight(height, 70)
		left := m.columnWidth(50)
		right := m.remainderWidth(left)
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			renderPane("Events", scopedEventLines(&m.sess.Events, paneItemWidth(left)), left, topHeight),
			renderPane("Recent events", recentEventLines(&m.sess.RecentEvents, paneItemWidth(right)), right, topHeight),
		)
		return top + "\n" + renderPane("Event detail", m.eventDetailLines(), m.width, detailHeight)
	case state.PageQueues:
		left := m.columnWidth(50)
		right := m.remainderWidth(left)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderPane("Queue stats", queueStatsLines(m.sess.QueueStats), left, height),
			renderPane(m.jobsPaneTitle(), queueJobLines(m.sess.QueueJobs), right, height),
		)
	case state.PageSettings:
		return renderPane("Settings", m.settingsLines(), m.width, height)
	default:
		left := m.columnWidth(30)
		mid := m.columnWidth(30)
		right := m.remainderWidth(left + mid)
		stepsHeight, eventsHeight := splitHeight(height, 60)
		rightColumn := renderPane(m.stepsPaneTitle(), stepLines(&m.sess.Steps, paneItemWidth(right)), right, stepsHeight) +
			"\n" + renderPane("Events", scopedEventLines(&m.sess.Events, paneItemWidth(right)), right, eventsHeight)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderPane("Projects", projectLines(&m.sess.Projects, paneItemWidth(left)), left, height),
			renderPane("Protocols", protocolLines(&m.sess.Protocols, paneItemWidth(mid)), mid, height),
			rightColumn,
		)
	}
}

func (m *Model) renderStatusLine() string {
	line := styles.Status.Render(m.statusLineText())
	if m.sess.LastError != "" {
		line += styles.Error.Render(fmt.Sprintf(" • Error: %s", m.sess.LastError))
	}
	return line
}

func (m *Model) stepsPaneTitle() string {
	return fmt.Sprintf("Steps (filter: %s)", state.FilterLabel(m.sess.StepFilter))
}

func (m *Model) jobsPaneTitle() string {
	return fmt.Sprintf("Queue jobs (filter: %s)", state.FilterLabel(m.sess.JobFilter))
}

func (m *Model) columnWidth(percent int) int {
	if m.width <= 0 {
		return 0
	}
	return m.width * percent / 100
}

func (m *Model) remainderWidth(used int) int {
	if m.width <= 0 {
		return 0
	}
	rest := m.width - used
	if rest < 0 {
		rest = 0
	}
	return rest
}

func paneItemWidth(width int) int {
	if width <= 0 {
		return 0
	}
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	return inner
}

func splitHeight(height, percent int) (int, int) {
	if height <= 0 {
		return 0, 0
	}
	first := height * percent / 100
	if first < 3 {
		first = 3
	}
	second := height - first
	if second < 3 {
		second = 3
	}
	return first, second
}

func projectLines(list *state.List[api.Project], width int) []styledLine {
	items := list.Items()
	if len(items) == 0 {
		return []styledLine{{text: "(no projects)", style: styles.Item}}
	}
	selected, _ := list.Index()
	lines := make([]styledLine, 0, len(items))
	for i, project := range items {
		label := fmt.Sprintf("%d • %s (%s)", project.ID, project.Name, dash(project.BaseBranch))
		lines = append(lines, buildItemLine(label, i == selected, width))
	}
	return lines
}

func protocolLines(list *state.List[api.ProtocolRun], width int) []styledLine {
	items := list.Items()
	if len(items) == 0 {
		return []styledLine{{text: "(no protocols)", style: styles.Item}}
	}
	selected, _ := list.Index()
	lines := make([]styledLine, 0, len(items))
	for i, run := range items {
		label := fmt.Sprintf("%d • %s [%s] (%s)", run.ID, run.ProtocolName, dash(run.Status), dash(run.BaseBranch))
		lines = append(lines, buildItemLine(label, i == selected, width))
	}
	return lines
}

func stepLines(list *state.List[api.StepRun], width int) []styledLine {
	items := list.Items()
	if len(items) == 0 {
		return []styledLine{{text: "(no steps)", style: styles.Item}}
	}
	selected, _ := list.Index()
	lines := make([]styledLine, 0, len(items))
	for i, step := range items {
		label := fmt.Sprintf("%d: %s [%s] (r=%d)", step.StepIndex, step.StepName, step.Status, step.Retries)
		lines = append(lines, buildItemLine(label, i == selected, width))
	}
	return lines
}

func branchLines(list *state.List[string], width int) []styledLine {
	items := list.Items()
	if len(items) == 0 {
		return []styledLine{{text: "(no branches)", style: styles.Item}}
	}
	selected, _ := list.Index()
	lines := make([]styledLine, 0, len(items))
	for i, branch := range items {
		lines = append(lines, buildItemLine(branch, i == selected, width))
	}
	return lines
}

// scopedEventLines renders protocol events newest first; the highlighted row
// is the selection's position counted from the end of the list.
func scopedEventLines(list *state.List[api.Event], width int) []styledLine {
	items := list.Items()
	if len(items) == 0 {
		return []styledLine{{text: "(no events)", style: styles.Item}}
	}
	highlight := -1
	if idx, ok := list.Index(); ok {
		highlight = len(items) - 1 - idx
	}
	count := len(items)
	if count > eventDisplayLimit {
		count = eventDisplayLimit
	}
	lines := make([]styledLine, 0, count)
	for row := 0; row < count; row++ {
		ev := items[len(items)-1-row]
		label := fmt.Sprintf("%s: %s", ev.EventType, ev.Message)
		lines = append(lines, buildItemLine(label, row == highlight, width))
	}
	return lines
}

func recentEventLines(list *state.List[api.Event], width int) []styledLine {
	items := list.Items()
	if len(items) == 0 {
		return []styledLine{{text: "(no events)", style: styles.Item}}
	}
	selected, _ := list.Index()
	count := len(items)
	if count > eventDisplayLimit {
		count = eventDisplayLimit
	}
	lines := make([]styledLine, 0, count)
	for i := 0; i < count; i++ {
		label := fmt.Sprintf("%s: %s", items[i].EventType, items[i].Message)
		lines = append(lines, buildItemLine(label, i == selected, width))
	}
	return lines
}

func (m *Model) eventDetailLines() []styledLine {
	items := m.sess.Events.Items()
	var selected *api.Event
	if idx, ok := m.sess.Events.Index(); ok {
		selected = &items[idx]
	} else if len(items) > 0 {
		selected = &items[len(items)-1]
	}
	if selected == nil {
		return []styledLine{{text: "No events yet.", style: styles.Item}}
	}
	lines := []styledLine{
		{text: fmt.Sprintf("%s • %s", selected.EventType, selected.CreatedAt), style: styles.DetailTitle},
		{text: selected.Message, style: styles.DetailBody},
	}
	if body := formatJSON(selected.Metadata); body != "-" {
		for _, row := range strings.Split(body, "\n") {
			lines = append(lines, styledLine{text: row, style: styles.DetailBody})
		}
	}
	return lines
}

func queueStatsLines(raw json.RawMessage) []styledLine {
	body := formatJSON(raw)
	rows := strings.Split(body, "\n")
	lines := make([]styledLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, styledLine{text: row, style: styles.DetailBody})
	}
	return lines
}

var queueJobColumns = []table.Column{
	{Title: "#", Numeric: true},
	{Title: "JOB"},
	{Title: "STATUS"},
	{Title: "ENQUEUED"},
}

func queueJobLines(jobs []api.QueueJob) []styledLine {
	if len(jobs) == 0 {
		return []styledLine{{text: "(no jobs)", style: styles.Item}}
	}
	rows := make([][]string, 0, len(jobs))
	for i, job := range jobs {
		rows = append(rows, []string{strconv.Itoa(i + 1), dash(job.JobID), dash(job.Status), dash(job.EnqueuedAt)})
	}
	formatted := table.Format(queueJobColumns, rows)
	lines := make([]styledLine, len(formatted))
	for i, row := range formatted {
		style := styles.Item
		if i == 0 {
			style = styles.TableHeader
		}
		lines[i] = styledLine{text: row, style: style}
	}
	return lines
}

func (m *Model) settingsLines() []styledLine {
	return []styledLine{
		{text: fmt.Sprintf("API base: %s", m.gateway.BaseURL()), style: styles.DetailBody},
		{text: fmt.Sprintf("Token: %s | Project token: %s", setOrDash(m.gateway.HasToken()), setOrDash(m.gateway.HasProjectToken())), style: styles.DetailBody},
		{text: fmt.Sprintf("Auto-refresh: every %ds", int(m.opts.RefreshInterval.Seconds())), style: styles.DetailBody},
		{text: "Read-only mode (Phase 1)", style: styles.DetailBody},
	}
}

// formatJSON pretty-prints a raw document, mapping absent or null values to
// a dash.
func formatJSON(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "-"
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "-"
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "-"
	}
	return string(pretty)
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
