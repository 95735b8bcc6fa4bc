package board

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/notes"
	"noteboard/internal/render"
	"noteboard/internal/tui/form"
	"noteboard/internal/tui/notify"
	"noteboard/internal/tui/shared"
	"noteboard/internal/tui/theme"
)

type focusArea int

const (
	focusList focusArea = iota
	focusCreate
	focusSearch
)

// Options holds the board's timing and bootstrap settings.
type Options struct {
	Notify          notify.Timings
	RemoveDelay     time.Duration
	SampleData      bool
	SampleDataDelay time.Duration
}

// Model is the notes board: the create form, the rendered list, the edit
// and delete dialogs and the notification surface.
type Model struct {
	api     NoteAPI
	opts    Options
	form    form.Controller
	surface notify.Surface
	spinner spinner.Model

	tree       render.Tree
	loading    bool
	creating   bool
	refreshSeq int

	editingID       *notes.ID
	confirm         *shared.ConfirmationModal
	pendingDeleteID *notes.ID

	focus  focusArea
	cursor int
	search textinput.Model
	query  string

	width  int
	height int
}

// New creates a board backed by client.
func New(client NoteAPI, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Subtitle

	si := textinput.New()
	si.Placeholder = "Search notes"
	si.Prompt = "/ "
	si.CharLimit = 0

	return Model{
		api:     client,
		opts:    opts,
		form:    form.New(),
		surface: notify.New(opts.Notify),
		spinner: sp,
		tree:    render.Render(nil),
		loading: true,
		search:  si,
		width:   80,
		height:  24,
	}
}

// Init loads the collection and arms the sample-data timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return refreshRequestedMsg{} },
		m.sampleDataTimer(),
	)
}

// SetSize updates the area the board renders into.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form.Create.SetWidth(m.formWidth())
	m.form.Edit.SetWidth(m.modalWidth())
	m.search.Width = m.contentWidth() - 4
	if m.confirm != nil {
		m.confirm.Width = m.modalWidth()
	}
}

// CapturesKeys reports whether keystrokes belong to a text field or dialog,
// so global shortcuts must not fire.
func (m Model) CapturesKeys() bool {
	return m.confirm != nil || m.editingID != nil || m.focus != focusList
}

func (m Model) Tree() render.Tree {
	return m.tree
}

func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Banner() string {
	return m.surface.Banner()
}

func (m Model) Toasts() []notify.Toast {
	return m.surface.Toasts()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if cmd, handled := m.handleSync(msg); handled {
		return cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case shared.ConfirmationResultMsg:
		return m.handleConfirmationResult(msg)
	}

	if cmd := m.surface.Update(msg); cmd != nil {
		return cmd
	}

	// Cursor blink and other field-level messages.
	switch {
	case m.editingID != nil:
		return m.form.UpdateEdit(msg)
	case m.focus == focusCreate:
		return m.form.UpdateCreate(msg)
	case m.focus == focusSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleSync(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case refreshRequestedMsg:
		return m.Refresh(), true
	case notesLoadedMsg:
		return m.handleNotesLoaded(msg), true
	case noteCreatedMsg:
		return m.handleNoteCreated(msg), true
	case noteUpdatedMsg:
		return m.handleNoteUpdated(msg), true
	case noteDeletedMsg:
		return m.handleNoteDeleted(msg), true
	case removeDelayElapsedMsg:
		return m.Refresh(), true
	case sampleDataDueMsg:
		return m.seedSampleData(), true
	case sampleDataDoneMsg:
		return m.handleSampleDataDone(msg), true
	case clipboardResultMsg:
		return m.handleClipboardResult(msg), true
	}
	return nil, false
}

// visibleCards returns the cards matching the search query, in display order.
func (m Model) visibleCards() []render.Card {
	if m.query == "" {
		return m.tree.Cards
	}
	matched := notes.Filter(m.tree.Notes(), m.query)
	keep := make(map[notes.ID]bool, len(matched))
	for _, n := range matched {
		keep[n.ID] = true
	}
	cards := make([]render.Card, 0, len(matched))
	for _, c := range m.tree.Cards {
		if keep[c.Note.ID] {
			cards = append(cards, c)
		}
	}
	return cards
}

func (m Model) selectedCard() (render.Card, bool) {
	cards := m.visibleCards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return render.Card{}, false
	}
	return cards[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleCards())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) contentWidth() int {
	if m.width > 100 {
		return 100
	}
	if m.width < 30 {
		return 30
	}
	return m.width
}

func (m Model) formWidth() int {
	return m.contentWidth() - 4
}

func (m Model) modalWidth() int {
	w := m.contentWidth() - 10
	if w > 70 {
		w = 70
	}
	return w
}
