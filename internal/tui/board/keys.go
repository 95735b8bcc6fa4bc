package board

import (
	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/tui/form"
	"noteboard/internal/tui/shared"
)

// HelpSections lists the board's key bindings for the help overlay.
func HelpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Notes",
			Binds: []shared.HelpBind{
				{Key: "j/k, ↑/↓", Desc: "Move between notes"},
				{Key: "g/G", Desc: "First / last note"},
				{Key: "e, enter", Desc: "Edit selected note"},
				{Key: "d, x", Desc: "Delete selected note"},
				{Key: "y", Desc: "Copy note content"},
				{Key: "r", Desc: "Reload notes"},
				{Key: "/", Desc: "Search notes"},
			},
		},
		{
			Title: "Add Note",
			Binds: []shared.HelpBind{
				{Key: "n, tab", Desc: "Focus the form"},
				{Key: "tab", Desc: "Switch title / content"},
				{Key: "enter", Desc: "Add (from title)"},
				{Key: "ctrl+s", Desc: "Add note"},
				{Key: "ctrl+l", Desc: "Clear form"},
				{Key: "esc", Desc: "Back to list"},
			},
		},
		{
			Title: "Edit Note",
			Binds: []shared.HelpBind{
				{Key: "ctrl+s", Desc: "Save changes"},
				{Key: "tab", Desc: "Switch title / content"},
				{Key: "esc", Desc: "Cancel"},
			},
		},
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm != nil {
		return m.confirm.Update(msg)
	}
	if m.editingID != nil {
		return m.handleEditKey(msg)
	}

	switch m.focus {
	case focusCreate:
		return m.handleCreateKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.CancelEdit()
		return nil
	case "ctrl+s":
		return m.SubmitEdit()
	case "tab", "shift+tab":
		return m.form.Edit.FocusNext()
	case "enter":
		if m.form.Edit.Focused() == form.FieldTitle {
			return m.SubmitEdit()
		}
	}
	return m.form.UpdateEdit(msg)
}

func (m *Model) handleCreateKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.focus = focusList
		m.form.Create.Blur()
		return nil
	case "ctrl+s":
		return m.SubmitCreate()
	case "ctrl+l":
		return m.ClearForm()
	case "tab", "shift+tab":
		return m.form.Create.FocusNext()
	case "enter":
		if m.form.Create.Focused() == form.FieldTitle {
			if m.form.CanSubmit() {
				return m.SubmitCreate()
			}
			return nil
		}
	}

	cmd := m.form.UpdateCreate(msg)
	if m.form.CanSubmit() {
		m.surface.ClearBanner()
	}
	return cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.query = ""
		m.search.Blur()
		m.focus = focusList
		m.clampCursor()
		return nil
	case "enter":
		m.search.Blur()
		m.focus = focusList
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.query != m.search.Value() {
		m.query = m.search.Value()
		m.cursor = 0
	}
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	cards := m.visibleCards()

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(cards)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(cards) > 0 {
			m.cursor = len(cards) - 1
		}
	case "e", "enter":
		if card, ok := m.selectedCard(); ok {
			return m.OpenEdit(card.Note)
		}
	case "d", "x", "delete":
		if card, ok := m.selectedCard(); ok {
			return m.Remove(card.Note.ID)
		}
	case "y":
		return m.CopySelected()
	case "r":
		return m.Refresh()
	case "n", "tab":
		m.focus = focusCreate
		return m.form.Create.Focus(form.FieldTitle)
	case "/":
		m.focus = focusSearch
		return m.search.Focus()
	case "esc":
		if m.query != "" {
			m.search.SetValue("")
			m.query = ""
			m.clampCursor()
		}
	}
	return nil
}
