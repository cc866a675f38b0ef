package ui

import "fmt"

// viewModal draws the open modal centered on an otherwise blank screen. The
// terminal has no compositing, so the modal replaces the underlying view
// until it closes.
func (m *Model) viewModal() string {
	var body []styledLine
	switch modal := m.modal.(type) {
	case *messageModal:
		body = []styledLine{{text: modal.text, style: styles.DetailBody}}
	case *confirmModal:
		body = []styledLine{
			{text: modal.heading, style: styles.ModalTitle},
			{text: "", style: styles.Item},
			{text: modal.message, style: styles.DetailBody},
			{text: "Enter to confirm, Esc to cancel", style: styles.Footer},
		}
	case *formModal:
		body = append(body, styledLine{text: modal.form.Title, style: styles.ModalTitle})
		body = append(body, styledLine{text: "", style: styles.Item})
		body = append(body, formLines(modal.form)...)
		body = append(body, styledLine{text: "", style: styles.Item})
		body = append(body, styledLine{text: "Enter submit • Tab next • Esc cancel", style: styles.Footer})
	case *paletteModal:
		body = append(body, styledLine{text: "Actions", style: styles.ModalTitle})
		body = append(body, styledLine{text: "", style: styles.Item})
		for idx, action := range modal.items {
			prefix := " "
			lineStyle := styles.Item
			if idx == modal.index {
				prefix = "➤"
				lineStyle = styles.SelectedItem
			}
			body = append(body, styledLine{text: fmt.Sprintf("%s %s", prefix, action.label()), style: lineStyle})
		}
		body = append(body, styledLine{text: "", style: styles.Item})
		body = append(body, styledLine{text: "Enter run • j/k move • Esc close", style: styles.Footer})
	default:
		return ""
	}
	width := 0
	if m.width > 0 {
		width = m.width * 60 / 100
	}
	return m.centered(renderModalPane(m.modal.title(), body, width))
}

func renderModalPane(title string, lines []styledLine, width int) string {
	inner := 0
	if width > 0 {
		inner = width - 4
		if inner < 1 {
			inner = 1
		}
	}
	body := applyWidth(lines, inner)
	content := styles.ModalTitle.Render(truncateText(title, inner))
	if rendered := renderLines(body); rendered != "" {
		content += "\n" + rendered
	}
	box := *styles.Modal
	if width > 0 {
		box = box.Width(width - 2)
	}
	return box.Render(content)
}
