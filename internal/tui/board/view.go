package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/tui/shared"
	"noteboard/internal/tui/theme"
)

const (
	emptyStateText  = "No notes yet. Create your first note above!"
	loadingText     = "Loading notes..."
	listHintsText   = "[n] new  [e] edit  [d] delete  [y] copy  [/] search  [r] reload"
	createPanelName = "Add New Note"
	editPanelName   = "Edit Note"
)

// View renders the board. Open dialogs replace the board; the edit dialog
// keeps the banner and toasts around it.
func (m Model) View() string {
	if m.confirm != nil {
		return shared.PlaceModal(m.confirm.View(), m.width, m.height)
	}
	if m.editingID != nil {
		box := theme.ModalBox.Width(m.modalWidth() + 4).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				theme.ModalTitle.Render(editPanelName),
				"",
				m.form.EditView(),
			),
		)
		return shared.PlaceModal(m.withFeedback(box), m.width, m.height)
	}

	cw := m.contentWidth()
	sections := []string{m.headerView()}
	if banner := m.surface.BannerView(cw); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, m.createView(cw))
	if m.focus == focusSearch || m.query != "" {
		sections = append(sections, m.search.View())
	}

	toasts := m.surface.ToastsView(cw)
	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	if toasts != "" {
		used += lipgloss.Height(toasts)
	}
	sections = append(sections, m.listView(cw, m.height-used))
	if toasts != "" {
		sections = append(sections, toasts)
	}

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// withFeedback stacks the banner above box and the toasts below it.
func (m Model) withFeedback(box string) string {
	width := lipgloss.Width(box)
	parts := make([]string, 0, 3)
	if banner := m.surface.BannerView(width); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, box)
	if toasts := m.surface.ToastsView(width); toasts != "" {
		parts = append(parts, toasts)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerView() string {
	header := theme.Title.Render("Notes Manager") + "  " +
		theme.Subtitle.Render(fmt.Sprintf("Notes (%d)", m.tree.Count))
	if m.loading {
		header += " " + m.spinner.View()
	}
	return header
}

func (m Model) createView(width int) string {
	style := theme.Panel
	if m.focus == focusCreate {
		style = theme.PanelFocused
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Subtitle.Render(createPanelName),
		m.form.CreateView(),
	))
}

func (m Model) listView(width, height int) string {
	if height < 3 {
		height = 3
	}
	hints := theme.HelpHint.Render(listHintsText)

	if m.tree.Empty {
		text := theme.Muted.Render(emptyStateText)
		if m.loading {
			text = m.spinner.View() + " " + theme.Muted.Render(loadingText)
		}
		return shared.CenterWithBottomHints(text, hints, height)
	}

	cards := m.visibleCards()
	if len(cards) == 0 {
		text := theme.Muted.Render(fmt.Sprintf("No notes match %q", m.query))
		return shared.CenterWithBottomHints(text, hints, height)
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = shared.StyledNoteCard(c, m.focus == focusList && i == m.cursor, width)
	}

	avail := height - lipgloss.Height(hints)
	start, end := window(rendered, m.cursor, avail)
	body := strings.Join(rendered[start:end], "\n")
	return shared.TopWithBottomHints(body, hints, height)
}

// window picks the run of cards around cursor that fits in height lines,
// keeping the cursor card visible.
func window(rendered []string, cursor, height int) (int, int) {
	if len(rendered) == 0 {
		return 0, 0
	}
	if cursor >= len(rendered) {
		cursor = len(rendered) - 1
	}

	used := lipgloss.Height(rendered[cursor])
	start := cursor
	for start > 0 {
		h := lipgloss.Height(rendered[start-1])
		if used+h > height {
			break
		}
		used += h
		start--
	}
	end := cursor + 1
	for end < len(rendered) {
		h := lipgloss.Height(rendered[end])
		if used+h > height {
			break
		}
		used += h
		end++
	}
	return start, end
}
