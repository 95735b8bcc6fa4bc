package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/notes"
	"noteboard/internal/tui/theme"
)

// Field identifies one input of a Pair.
type Field int

const (
	FieldTitle Field = iota
	FieldContent
)

const contentHeight = 5

var (
	labelStyle        = lipgloss.NewStyle().Foreground(theme.Secondary)
	labelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
)

// Pair is a title input and a content textarea with live counters.
// The inputs accept any length; the counters only warn.
type Pair struct {
	Title   textinput.Model
	Content textarea.Model
	focus   Field
	width   int
}

// NewPair creates an empty, blurred pair.
func NewPair() Pair {
	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.Prompt = ""
	ti.CharLimit = 0

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(contentHeight)

	p := Pair{Title: ti, Content: ta}
	p.SetWidth(60)
	return p
}

// Values returns the raw, untrimmed field values.
func (p Pair) Values() (string, string) {
	return p.Title.Value(), p.Content.Value()
}

// SetValues replaces both field values.
func (p *Pair) SetValues(title, content string) {
	p.Title.SetValue(title)
	p.Content.SetValue(content)
}

// Reset empties both fields and focuses the title.
func (p *Pair) Reset() tea.Cmd {
	p.SetValues("", "")
	return p.Focus(FieldTitle)
}

// Focus moves focus to f.
func (p *Pair) Focus(f Field) tea.Cmd {
	p.focus = f
	if f == FieldContent {
		p.Title.Blur()
		return p.Content.Focus()
	}
	p.Content.Blur()
	return p.Title.Focus()
}

// FocusNext cycles focus between title and content.
func (p *Pair) FocusNext() tea.Cmd {
	if p.focus == FieldTitle {
		return p.Focus(FieldContent)
	}
	return p.Focus(FieldTitle)
}

// Blur removes focus from both fields.
func (p *Pair) Blur() {
	p.Title.Blur()
	p.Content.Blur()
}

func (p Pair) Focused() Field {
	return p.focus
}

func (p Pair) IsFocused() bool {
	return p.Title.Focused() || p.Content.Focused()
}

// SetWidth sizes both inputs to fit w columns.
func (p *Pair) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	p.width = w
	p.Title.Width = w - 1
	p.Content.SetWidth(w)
}

// Update forwards msg to the focused field.
func (p *Pair) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if p.focus == FieldContent {
		p.Content, cmd = p.Content.Update(msg)
	} else {
		p.Title, cmd = p.Title.Update(msg)
	}
	return cmd
}

// TitleCounter returns the "n/100" label for the title.
func (p Pair) TitleCounter() string {
	return notes.Counter(p.Title.Value(), notes.MaxTitleLength)
}

// ContentCounter returns the "n/500" label for the content.
func (p Pair) ContentCounter() string {
	return notes.Counter(p.Content.Value(), notes.MaxContentLength)
}

func counterView(value string, limit int, label string) string {
	if notes.OverLimit(value, limit) {
		return theme.CounterOver.Render(label)
	}
	return theme.Counter.Render(label)
}

func (p Pair) header(name string, f Field, counter string) string {
	style := labelStyle
	if p.IsFocused() && p.focus == f {
		style = labelFocusedStyle
	}
	left := style.Render(name)
	gap := p.width - lipgloss.Width(left) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + counter
}

// View renders both fields with their counters.
func (p Pair) View() string {
	titleValue, contentValue := p.Values()
	return lipgloss.JoinVertical(lipgloss.Left,
		p.header("Title", FieldTitle, counterView(titleValue, notes.MaxTitleLength, p.TitleCounter())),
		p.Title.View(),
		"",
		p.header("Content", FieldContent, counterView(contentValue, notes.MaxContentLength, p.ContentCounter())),
		p.Content.View(),
	)
}
