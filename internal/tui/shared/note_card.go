package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"noteboard/internal/render"
	"noteboard/internal/tui/theme"
)

// StyledNoteCard renders a card as a bordered box of the given outer width.
// Format: title, content lines, then a footer with the timestamp and note id.
// Selected cards also show their actions, wrapped onto a new line when narrow.
func StyledNoteCard(c render.Card, selected bool, width int) string {
	inner := width - 4 // border (2) and padding (2)
	if inner < 10 {
		inner = 10
	}

	title := theme.Bold.Render(ansi.Truncate(c.Title, inner, "…"))
	if selected {
		title = theme.Selected.Render(ansi.Truncate(c.Title, inner, "…"))
	}

	body := lipgloss.NewStyle().Width(inner).Render(strings.Join(c.Lines, "\n"))

	meta := []string{theme.Timestamp.Render(c.Timestamp)}
	if !c.Note.ID.IsZero() {
		meta = append(meta, theme.Muted.Render("#"+c.Note.ID.String()))
	}
	if selected {
		var actions []string
		for _, a := range c.Actions {
			switch a {
			case render.ActionEdit:
				actions = append(actions, "[e] edit")
			case render.ActionDelete:
				actions = append(actions, "[d] delete")
			}
		}
		if len(actions) > 0 {
			meta = append(meta, theme.HelpHint.Render(strings.Join(actions, "  ")))
		}
	}
	footer := packFooter(meta, inner)

	style := theme.Card
	if selected {
		style = theme.CardSelected
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, body, footer))
}

// packFooter joins parts two spaces apart, starting a new line whenever the
// next part would overflow width. A single part wider than width is truncated.
func packFooter(parts []string, width int) string {
	var lines []string
	line := ""
	for _, p := range parts {
		p = ansi.Truncate(p, width, "…")
		switch {
		case line == "":
			line = p
		case lipgloss.Width(line)+2+lipgloss.Width(p) <= width:
			line += "  " + p
		default:
			lines = append(lines, line)
			line = p
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
