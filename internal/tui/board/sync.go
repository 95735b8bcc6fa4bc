package board

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/api"
	"noteboard/internal/logs"
	"noteboard/internal/notes"
	"noteboard/internal/render"
	"noteboard/internal/tui/form"
	"noteboard/internal/tui/shared"
)

// NoteAPI is the remote collection the board keeps in sync with.
type NoteAPI interface {
	ListNotes(ctx context.Context) ([]notes.Note, error)
	CreateNote(ctx context.Context, title, content string) (notes.Note, error)
	UpdateNote(ctx context.Context, id notes.ID, title, content string) error
	DeleteNote(ctx context.Context, id notes.ID) error
}

const (
	msgLoadFailed   = "Failed to load notes. Make sure the backend server is running."
	msgFillBoth     = "Please fill in both title and content"
	msgAdded        = "Note added successfully!"
	msgAddFailed    = "Failed to add note"
	msgEditEmpty    = "Title and content cannot be empty"
	msgUpdated      = "Note updated successfully!"
	msgUpdateFailed = "Failed to update note"
	msgDeleted      = "Note deleted successfully!"
	msgDeleteFailed = "Failed to delete note"
	msgCopied       = "Note copied to clipboard"
	msgCopyFailed   = "Failed to copy note"

	confirmDeleteMessage = "Are you sure you want to delete this note?"
	confirmDeleteDetails = "This action cannot be undone."

	welcomeTitle   = "Welcome to Notes Manager!"
	welcomeContent = "This is your first note. You can:\n" +
		"• Add new notes using the form above\n" +
		"• Edit notes by clicking the edit button\n" +
		"• Delete notes by clicking the trash icon\n\n" +
		"Try creating your own notes!"
)

type refreshRequestedMsg struct{}

type notesLoadedMsg struct {
	seq   int
	notes []notes.Note
	err   error
}

type noteCreatedMsg struct {
	note notes.Note
	err  error
}

type noteUpdatedMsg struct {
	id  notes.ID
	err error
}

type noteDeletedMsg struct {
	id  notes.ID
	err error
}

type removeDelayElapsedMsg struct {
	id notes.ID
}

type sampleDataDueMsg struct{}

type sampleDataDoneMsg struct {
	created bool
	err     error
}

type clipboardResultMsg struct {
	err error
}

// Refresh fetches the whole collection. Only the response to the most recent
// call is applied; older ones are dropped when they arrive.
func (m *Model) Refresh() tea.Cmd {
	m.refreshSeq++
	seq := m.refreshSeq
	m.loading = true
	client := m.api
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		list, err := client.ListNotes(context.Background())
		return notesLoadedMsg{seq: seq, notes: list, err: err}
	})
}

func (m *Model) handleNotesLoaded(msg notesLoadedMsg) tea.Cmd {
	if msg.seq != m.refreshSeq {
		logs.Logger.Printf("Discarding stale refresh %d (latest %d)", msg.seq, m.refreshSeq)
		return nil
	}
	m.loading = false
	if msg.err != nil {
		m.tree = render.Render(nil)
		m.clampCursor()
		return m.surface.Error(msgLoadFailed)
	}
	m.tree = render.Render(msg.notes)
	m.clampCursor()
	return nil
}

// SubmitCreate posts the create form. Invalid input never reaches the backend.
func (m *Model) SubmitCreate() tea.Cmd {
	title, content := m.form.Create.Values()
	if !form.Validate(title, content) {
		return m.surface.Error(msgFillBoth)
	}
	if m.creating {
		return nil
	}
	m.creating = true

	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	client := m.api
	return func() tea.Msg {
		created, err := client.CreateNote(context.Background(), title, content)
		return noteCreatedMsg{note: created, err: err}
	}
}

func (m *Model) handleNoteCreated(msg noteCreatedMsg) tea.Cmd {
	m.creating = false
	if msg.err != nil {
		return m.surface.Error(api.UserMessage(msg.err, msgAddFailed))
	}
	return tea.Batch(
		m.ClearForm(),
		m.surface.Success(msgAdded),
		m.Refresh(),
	)
}

// ClearForm resets the create form and hides the error banner.
func (m *Model) ClearForm() tea.Cmd {
	m.surface.ClearBanner()
	cmd := m.form.Clear()
	if m.focus != focusCreate {
		m.form.Create.Blur()
		return nil
	}
	return cmd
}

// OpenEdit selects n for editing, replacing any previous selection.
func (m *Model) OpenEdit(n notes.Note) tea.Cmd {
	id := n.ID
	m.editingID = &id
	if m.focus == focusCreate {
		m.focus = focusList
	}
	m.form.Create.Blur()
	return m.form.LoadForEdit(n)
}

// CancelEdit closes the edit surface without saving.
func (m *Model) CancelEdit() {
	m.editingID = nil
	m.form.Edit.Blur()
}

// EditingID returns the note being edited, if any.
func (m Model) EditingID() (notes.ID, bool) {
	if m.editingID == nil {
		return "", false
	}
	return *m.editingID, true
}

// SubmitEdit saves the edit form for the selected note.
func (m *Model) SubmitEdit() tea.Cmd {
	if m.editingID == nil {
		return nil
	}
	title, content := m.form.Edit.Values()
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return m.surface.Failure(msgEditEmpty)
	}

	id := *m.editingID
	client := m.api
	return func() tea.Msg {
		err := client.UpdateNote(context.Background(), id, title, content)
		return noteUpdatedMsg{id: id, err: err}
	}
}

func (m *Model) handleNoteUpdated(msg noteUpdatedMsg) tea.Cmd {
	if msg.err != nil {
		return m.surface.Failure(msgUpdateFailed)
	}
	// A different note may have been opened while the save was in flight.
	if m.editingID != nil && *m.editingID == msg.id {
		m.CancelEdit()
	}
	return tea.Batch(
		m.surface.Success(msgUpdated),
		m.Refresh(),
	)
}

// Remove asks for confirmation before deleting id.
func (m *Model) Remove(id notes.ID) tea.Cmd {
	details := confirmDeleteDetails
	if card, ok := m.tree.Find(id); ok && card.Title != "" {
		details = card.Title + "\n\n" + confirmDeleteDetails
	}
	m.pendingDeleteID = &id
	m.confirm = shared.NewConfirmationModal(confirmDeleteMessage, details, m.modalWidth())
	return nil
}

func (m *Model) handleConfirmationResult(msg shared.ConfirmationResultMsg) tea.Cmd {
	m.confirm = nil
	pending := m.pendingDeleteID
	m.pendingDeleteID = nil
	if !msg.Confirmed || pending == nil {
		return nil
	}

	id := *pending
	client := m.api
	return func() tea.Msg {
		err := client.DeleteNote(context.Background(), id)
		return noteDeletedMsg{id: id, err: err}
	}
}

func (m *Model) handleNoteDeleted(msg noteDeletedMsg) tea.Cmd {
	if msg.err != nil {
		return m.surface.Error(msgDeleteFailed)
	}
	toast := m.surface.Success(msgDeleted)
	if _, ok := m.tree.Find(msg.id); !ok {
		return tea.Batch(toast, m.Refresh())
	}

	m.tree = m.tree.Without(msg.id)
	m.clampCursor()
	id := msg.id
	return tea.Batch(toast, tea.Tick(m.opts.RemoveDelay, func(time.Time) tea.Msg {
		return removeDelayElapsedMsg{id: id}
	}))
}

func (m *Model) sampleDataTimer() tea.Cmd {
	if !m.opts.SampleData {
		return nil
	}
	return tea.Tick(m.opts.SampleDataDelay, func(time.Time) tea.Msg {
		return sampleDataDueMsg{}
	})
}

// seedSampleData creates the welcome note when the backend has no notes.
func (m *Model) seedSampleData() tea.Cmd {
	client := m.api
	return func() tea.Msg {
		ctx := context.Background()
		list, err := client.ListNotes(ctx)
		if err != nil {
			return sampleDataDoneMsg{err: err}
		}
		if len(list) > 0 {
			return sampleDataDoneMsg{}
		}
		if _, err := client.CreateNote(ctx, welcomeTitle, welcomeContent); err != nil {
			return sampleDataDoneMsg{err: err}
		}
		return sampleDataDoneMsg{created: true}
	}
}

func (m *Model) handleSampleDataDone(msg sampleDataDoneMsg) tea.Cmd {
	if msg.err != nil {
		logs.Logger.Printf("Sample data skipped: %v", msg.err)
		return nil
	}
	if !msg.created {
		return nil
	}
	return m.Refresh()
}

// CopySelected copies the selected note's content to the system clipboard.
func (m *Model) CopySelected() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		return nil
	}
	content := card.Note.Content
	return func() tea.Msg {
		return clipboardResultMsg{err: clipboard.WriteAll(content)}
	}
}

func (m *Model) handleClipboardResult(msg clipboardResultMsg) tea.Cmd {
	if msg.err != nil {
		logs.Logger.Printf("Clipboard write failed: %v", msg.err)
		return m.surface.Failure(msgCopyFailed)
	}
	return m.surface.Info(msgCopied)
}
