package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.modal != nil {
		return m.viewModal()
	}
	switch m.screen {
	case ScreenWelcome:
		return m.viewWelcome()
	case ScreenLogin:
		return m.viewLogin()
	case ScreenMainMenu:
		return m.viewMenu()
	case ScreenSettingsInfo:
		return m.viewSettingsInfo()
	case ScreenHelp:
		return m.viewHelp()
	case ScreenVersion:
		return m.viewVersion()
	default:
		return m.viewDashboard()
	}
}

// renderPane draws a bordered box with a title row and body lines. width and
// height are outer dimensions; zero sizes the box to its content.
func renderPane(title string, lines []styledLine, width, height int) string {
	inner := 0
	if width > 0 {
		inner = width - 4 // two border columns, two padding columns
		if inner < 1 {
			inner = 1
		}
	}
	body := lines
	if height > 0 {
		body = limitHeight(body, height-3, inner)
	}
	body = applyWidth(body, inner)
	content := styles.PaneTitle.Render(truncateText(title, inner))
	if rendered := renderLines(body); rendered != "" {
		content += "\n" + rendered
	}
	box := *styles.Pane
	if width > 0 {
		box = box.Width(width - 2)
	}
	if height > 0 {
		box = box.Height(height - 2)
	}
	return box.Render(content)
}

// buildItemLine constructs one selectable row. width > 0 pads the text so a
// selected row's background spans the whole pane.
func buildItemLine(label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// centered places content in the middle of the terminal when its size is
// known; otherwise it returns the content untouched.
func (m *Model) centered(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
