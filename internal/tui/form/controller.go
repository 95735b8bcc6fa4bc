package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/notes"
	"noteboard/internal/tui/theme"
)

// Controller owns the create and edit field pairs and the enabled state of
// the create action.
type Controller struct {
	Create    Pair
	Edit      Pair
	canSubmit bool
}

// New creates a controller with empty fields and submission disabled.
func New() Controller {
	return Controller{
		Create: NewPair(),
		Edit:   NewPair(),
	}
}

// Validate reports whether a title/content pair may be submitted.
func Validate(title, content string) bool {
	return notes.Valid(title, content)
}

// Revalidate recomputes the create action's enabled state.
func (c *Controller) Revalidate() bool {
	c.canSubmit = Validate(c.Create.Values())
	return c.canSubmit
}

func (c Controller) CanSubmit() bool {
	return c.canSubmit
}

// Clear empties the create fields, disables submission and focuses the title.
// Calling it on an already clear form changes nothing.
func (c *Controller) Clear() tea.Cmd {
	cmd := c.Create.Reset()
	c.canSubmit = false
	return cmd
}

// LoadForEdit fills the edit pair from n and focuses its title.
func (c *Controller) LoadForEdit(n notes.Note) tea.Cmd {
	c.Edit.SetValues(n.Title, n.Content)
	return c.Edit.Focus(FieldTitle)
}

// UpdateCreate forwards msg to the create pair and revalidates.
func (c *Controller) UpdateCreate(msg tea.Msg) tea.Cmd {
	cmd := c.Create.Update(msg)
	c.Revalidate()
	return cmd
}

// UpdateEdit forwards msg to the edit pair.
func (c *Controller) UpdateEdit(msg tea.Msg) tea.Cmd {
	return c.Edit.Update(msg)
}

// CreateView renders the create pair and its submit button.
func (c Controller) CreateView() string {
	button := theme.ButtonDisabled.Render("Add Note")
	if c.canSubmit {
		button = theme.Button.Render("Add Note")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		c.Create.View(),
		"",
		button+"  "+theme.HelpHint.Render("[ctrl+s] add  [ctrl+l] clear"),
	)
}

// EditView renders the edit pair and its actions.
func (c Controller) EditView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		c.Edit.View(),
		"",
		theme.Button.Render("Save Changes")+"  "+theme.HelpHint.Render("[ctrl+s] save  [esc] cancel  [tab] switch field"),
	)
}
