package board

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"noteboard/internal/api"
	"noteboard/internal/notes"
	"noteboard/internal/server"
	"noteboard/internal/store"
	"noteboard/internal/tui/notify"
	"noteboard/internal/tui/shared"
)

type fakeAPI struct {
	mu        sync.Mutex
	notes     []notes.Note
	nextID    int
	calls     []string
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeAPI(ns ...notes.Note) *fakeAPI {
	return &fakeAPI{notes: ns, nextID: 100}
}

func (f *fakeAPI) ListNotes(ctx context.Context) ([]notes.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]notes.Note, len(f.notes))
	copy(out, f.notes)
	return out, nil
}

func (f *fakeAPI) CreateNote(ctx context.Context, title, content string) (notes.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return notes.Note{}, f.createErr
	}
	f.nextID++
	n := notes.Note{
		ID:        notes.ID(strconv.Itoa(f.nextID)),
		Title:     title,
		Content:   content,
		Timestamp: notes.NewTimestamp(time.Now()),
	}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id notes.ID, title, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "update:"+id.String())
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].Title = title
			f.notes[i].Content = content
			return nil
		}
	}
	return &api.TransportError{Op: "update", StatusCode: 404, Message: "Note not found"}
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id notes.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete:"+id.String())
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return &api.TransportError{Op: "delete", StatusCode: 404, Message: "Note not found"}
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func testOptions() Options {
	return Options{
		Notify:          notify.Timings{Toast: time.Hour, Fade: time.Hour, Banner: time.Hour},
		RemoveDelay:     time.Millisecond,
		SampleDataDelay: time.Millisecond,
	}
}

func note(id, title, content string, minute int) notes.Note {
	return notes.Note{
		ID:        notes.ID(id),
		Title:     title,
		Content:   content,
		Timestamp: notes.NewTimestamp(time.Date(2024, 3, 1, 10, minute, 0, 0, time.UTC)),
	}
}

// collect runs cmds concurrently and returns the messages produced before
// wait elapses. Long timers and cursor blinks are left behind.
func collect(cmds []tea.Cmd, wait time.Duration) []tea.Msg {
	results := make(chan tea.Msg)
	done := make(chan struct{})
	defer close(done)

	outstanding := 0
	launch := func(c tea.Cmd) {
		if c == nil {
			return
		}
		outstanding++
		go func() {
			msg := c()
			select {
			case results <- msg:
			case <-done:
			}
		}()
	}
	for _, c := range cmds {
		launch(c)
	}

	var msgs []tea.Msg
	deadline := time.After(wait)
	for outstanding > 0 {
		select {
		case msg := <-results:
			outstanding--
			switch msg := msg.(type) {
			case nil, spinner.TickMsg:
			case tea.BatchMsg:
				for _, c := range msg {
					launch(c)
				}
			default:
				msgs = append(msgs, msg)
			}
		case <-deadline:
			return msgs
		}
	}
	return msgs
}

// drain feeds cmd's messages back into m until nothing quick is left.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for round := 0; len(pending) > 0 && round < 20; round++ {
		msgs := collect(pending, 250*time.Millisecond)
		pending = nil
		for _, msg := range msgs {
			var next tea.Cmd
			m, next = m.Update(msg)
			if next != nil {
				pending = append(pending, next)
			}
		}
	}
	return m
}

func loaded(t *testing.T, f *fakeAPI) Model {
	t.Helper()
	m := New(f, testOptions())
	m.SetSize(80, 40)
	return drain(t, m, m.Init())
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		case "ctrl+l":
			msg = tea.KeyMsg{Type: tea.KeyCtrlL}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func toastTexts(m Model) []string {
	var out []string
	for _, t := range m.Toasts() {
		out = append(out, t.Text)
	}
	return out
}

func hasToast(m Model, text string) bool {
	for _, t := range toastTexts(m) {
		if t == text {
			return true
		}
	}
	return false
}

func TestInit_EmptyCollection(t *testing.T) {
	m := loaded(t, newFakeAPI())

	if !m.Tree().Empty || m.Tree().Count != 0 {
		t.Fatalf("expected empty tree, got %+v", m.Tree())
	}
	if m.Loading() {
		t.Error("expected loading finished")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Notes (0)") {
		t.Errorf("expected count 0 in view:\n%s", view)
	}
	if !strings.Contains(view, emptyStateText) {
		t.Errorf("expected empty state in view:\n%s", view)
	}
}

func TestInit_NewestFirst(t *testing.T) {
	f := newFakeAPI(note("1", "Old", "a", 0), note("2", "New", "b", 5))
	m := loaded(t, f)

	cards := m.Tree().Cards
	if len(cards) != 2 || cards[0].Note.ID != "2" || cards[1].Note.ID != "1" {
		t.Fatalf("expected newest first, got %+v", cards)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Notes (2)") || !strings.Contains(view, "New") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestRefreshFailure_ShowsBannerAndEmptyState(t *testing.T) {
	f := newFakeAPI(note("1", "Old", "a", 0))
	f.listErr = errors.New("connection refused")
	m := loaded(t, f)

	if m.Banner() != msgLoadFailed {
		t.Errorf("expected load banner, got %q", m.Banner())
	}
	if !m.Tree().Empty {
		t.Error("expected empty state after failed load")
	}
}

func TestRefresh_StaleResponseDiscarded(t *testing.T) {
	m := New(newFakeAPI(), testOptions())
	m.Refresh()
	m.Refresh()

	m, _ = m.Update(notesLoadedMsg{seq: 2, notes: []notes.Note{note("1", "Fresh", "x", 1)}})
	m, _ = m.Update(notesLoadedMsg{seq: 1, notes: []notes.Note{note("1", "Stale", "x", 1), note("2", "Gone", "y", 2)}})

	if m.Tree().Count != 1 || m.Tree().Cards[0].Title != "Fresh" {
		t.Errorf("expected latest response kept, got %+v", m.Tree())
	}
	if m.Loading() {
		t.Error("expected loading finished")
	}
}

func TestSubmitCreate_InvalidMakesNoCall(t *testing.T) {
	f := newFakeAPI()
	m := loaded(t, f)

	for _, input := range [][2]string{{"", ""}, {"Title", ""}, {"  ", "content"}} {
		m.form.Create.SetValues(input[0], input[1])
		m = drain(t, m, m.SubmitCreate())
		if m.Banner() != msgFillBoth {
			t.Errorf("%q: expected banner %q, got %q", input, msgFillBoth, m.Banner())
		}
	}
	if f.count("create") != 0 {
		t.Errorf("expected no create calls, got %d", f.count("create"))
	}
}

func TestCreateThroughKeys(t *testing.T) {
	f := newFakeAPI()
	m := loaded(t, f)

	m = press(m, "n", "  Groceries ", "tab", "milk")
	if !m.CapturesKeys() {
		t.Fatal("expected form to capture keys")
	}
	if !m.form.CanSubmit() {
		t.Fatal("expected submit enabled")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	if f.count("create") != 1 {
		t.Fatalf("expected one create call, got %d", f.count("create"))
	}
	if m.Tree().Count != 1 || m.Tree().Cards[0].Note.Title != "Groceries" {
		t.Errorf("expected trimmed note in tree, got %+v", m.Tree())
	}
	if !hasToast(m, msgAdded) {
		t.Errorf("expected success toast, got %v", toastTexts(m))
	}
	title, content := m.form.Create.Values()
	if title != "" || content != "" || m.form.CanSubmit() {
		t.Error("expected form cleared and disabled")
	}
}

func TestCreate_EnterInTitleRequiresValidForm(t *testing.T) {
	f := newFakeAPI()
	m := loaded(t, f)

	m = press(m, "n", "Only title")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		m = drain(t, m, cmd)
	}
	if f.count("create") != 0 {
		t.Error("expected enter ignored while submit is disabled")
	}
}

func TestCreate_BackendRejection(t *testing.T) {
	f := newFakeAPI()
	f.createErr = &api.ValidationError{StatusCode: 400, Message: "Title and content cannot be empty"}
	m := loaded(t, f)

	m.form.Create.SetValues("t", "c")
	m.form.Revalidate()
	m = drain(t, m, m.SubmitCreate())
	if m.Banner() != "Title and content cannot be empty" {
		t.Errorf("expected backend message, got %q", m.Banner())
	}

	f.createErr = &api.TransportError{Op: "create", StatusCode: 500, Message: "500 Internal Server Error"}
	m = drain(t, m, m.SubmitCreate())
	if m.Banner() != msgAddFailed {
		t.Errorf("expected generic failure, got %q", m.Banner())
	}
	title, _ := m.form.Create.Values()
	if title != "t" {
		t.Error("expected form kept after failure")
	}
}

func TestClearForm_Idempotent(t *testing.T) {
	m := loaded(t, newFakeAPI())
	m = press(m, "n", "Title")
	m = drain(t, m, m.SubmitCreate())
	if m.Banner() == "" {
		t.Fatal("expected banner before clearing")
	}

	for i := 0; i < 2; i++ {
		m = press(m, "ctrl+l")
		title, content := m.form.Create.Values()
		if title != "" || content != "" || m.form.CanSubmit() {
			t.Errorf("pass %d: expected cleared form", i)
		}
		if m.Banner() != "" {
			t.Errorf("pass %d: expected banner hidden", i)
		}
	}
}

func TestTypingValidInputClearsBanner(t *testing.T) {
	m := loaded(t, newFakeAPI())
	m = press(m, "n")
	m = drain(t, m, m.SubmitCreate())
	if m.Banner() != msgFillBoth {
		t.Fatalf("expected banner, got %q", m.Banner())
	}

	m = press(m, "Title", "tab", "B")
	if m.Banner() != "" {
		t.Errorf("expected banner cleared once the form is valid, got %q", m.Banner())
	}
}

func TestEdit_SaveClosesAndRefreshes(t *testing.T) {
	f := newFakeAPI(note("7", "Groceries", "milk", 0))
	m := loaded(t, f)

	m = press(m, "e")
	if id, ok := m.EditingID(); !ok || id != "7" {
		t.Fatalf("expected note 7 in edit, got %q %v", id, ok)
	}
	title, content := m.form.Edit.Values()
	if title != "Groceries" || content != "milk" {
		t.Errorf("expected edit fields prefilled, got %q %q", title, content)
	}

	m.form.Edit.SetValues(" Groceries ", " bread ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	if _, ok := m.EditingID(); ok {
		t.Error("expected edit closed")
	}
	if f.count("update:7") != 1 {
		t.Errorf("expected one update, got %v", f.calls)
	}
	card, ok := m.Tree().Find("7")
	if !ok || card.Note.Content != "bread" {
		t.Errorf("expected refreshed content, got %+v", card)
	}
	if !hasToast(m, msgUpdated) {
		t.Errorf("expected update toast, got %v", toastTexts(m))
	}
}

func TestEdit_EmptyFieldsRejectedLocally(t *testing.T) {
	f := newFakeAPI(note("7", "Groceries", "milk", 0))
	m := loaded(t, f)
	m.OpenEdit(f.notes[0])

	m.form.Edit.SetValues("Groceries", "   ")
	m = drain(t, m, m.SubmitEdit())

	if f.count("update:7") != 0 {
		t.Error("expected no update call")
	}
	if !hasToast(m, msgEditEmpty) {
		t.Errorf("expected error toast, got %v", toastTexts(m))
	}
	if _, ok := m.EditingID(); !ok {
		t.Error("expected edit to stay open")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, msgEditEmpty) {
		t.Errorf("expected toast rendered beside edit dialog:\n%s", view)
	}
}

func TestEdit_FailureKeepsEditOpen(t *testing.T) {
	f := newFakeAPI(note("7", "Groceries", "milk", 0))
	f.updateErr = errors.New("boom")
	m := loaded(t, f)

	m = press(m, "e")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	if !hasToast(m, msgUpdateFailed) {
		t.Errorf("expected failure toast, got %v", toastTexts(m))
	}
	if _, ok := m.EditingID(); !ok {
		t.Fatal("expected edit to stay open")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, msgUpdateFailed) {
		t.Errorf("expected failure toast rendered with edit open:\n%s", view)
	}
	if !strings.Contains(view, editPanelName) {
		t.Errorf("expected edit dialog still drawn:\n%s", view)
	}
}

func TestEdit_BannerVisibleWhileEditing(t *testing.T) {
	f := newFakeAPI(note("7", "Groceries", "milk", 0))
	m := loaded(t, f)
	m.OpenEdit(f.notes[0])

	f.listErr = errors.New("connection refused")
	m = drain(t, m, m.Refresh())

	if m.Banner() != msgLoadFailed {
		t.Fatalf("expected load banner, got %q", m.Banner())
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, msgLoadFailed) {
		t.Errorf("expected banner rendered with edit open:\n%s", view)
	}
}

func TestEdit_LateSuccessKeepsOtherSelection(t *testing.T) {
	f := newFakeAPI(note("1", "A", "a", 0), note("2", "B", "b", 1))
	m := loaded(t, f)

	m.OpenEdit(f.notes[0])
	save := m.SubmitEdit()
	m.OpenEdit(f.notes[1])

	m = drain(t, m, save)
	if id, ok := m.EditingID(); !ok || id != "2" {
		t.Errorf("expected note 2 still in edit, got %q %v", id, ok)
	}
}

func TestEdit_CancelDiscards(t *testing.T) {
	f := newFakeAPI(note("7", "Groceries", "milk", 0))
	m := loaded(t, f)

	m = press(m, "e", "esc")
	if _, ok := m.EditingID(); ok {
		t.Error("expected edit closed")
	}
	if m.CapturesKeys() {
		t.Error("expected list to own keys again")
	}
	if f.count("update:7") != 0 {
		t.Error("expected no update call")
	}
}

func TestRemove_ConfirmedDeletesAndRefreshes(t *testing.T) {
	f := newFakeAPI(note("1", "A", "a", 0), note("2", "B", "b", 1))
	m := loaded(t, f)
	lists := f.count("list")

	m = press(m, "d")
	if m.confirm == nil {
		t.Fatal("expected confirmation dialog")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, confirmDeleteMessage) {
		t.Errorf("expected confirmation text in view:\n%s", view)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = drain(t, m, cmd)

	if f.count("delete:2") != 1 {
		t.Fatalf("expected delete of newest note, got %v", f.calls)
	}
	if _, ok := m.Tree().Find("2"); ok {
		t.Error("expected card removed")
	}
	if f.count("list") != lists+1 {
		t.Errorf("expected one refresh after delete, got %d", f.count("list")-lists)
	}
	if !hasToast(m, msgDeleted) {
		t.Errorf("expected delete toast, got %v", toastTexts(m))
	}
}

func TestRemove_CardLeavesBeforeRefresh(t *testing.T) {
	f := newFakeAPI(note("1", "A", "a", 0))
	m := loaded(t, f)

	m, cmd := m.Update(noteDeletedMsg{id: "1"})
	if !m.Tree().Empty {
		t.Fatal("expected card removed immediately")
	}
	if cmd == nil {
		t.Fatal("expected delayed refresh")
	}
}

func TestRemove_Cancelled(t *testing.T) {
	f := newFakeAPI(note("1", "A", "a", 0))
	m := loaded(t, f)

	m = press(m, "d")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = drain(t, m, cmd)

	if m.confirm != nil {
		t.Error("expected dialog closed")
	}
	if f.count("delete:1") != 0 {
		t.Error("expected no delete call")
	}
	if len(m.Toasts()) != 0 || m.Banner() != "" {
		t.Errorf("expected no notification, got toasts %v banner %q", toastTexts(m), m.Banner())
	}
}

func TestRemove_FailureKeepsCard(t *testing.T) {
	f := newFakeAPI(note("42", "Keep me", "x", 0))
	f.deleteErr = errors.New("boom")
	m := loaded(t, f)

	m.Remove("42")
	m = drain(t, m, func() tea.Msg { return shared.ConfirmationResultMsg{Confirmed: true} })

	if f.count("delete:42") != 1 {
		t.Fatalf("expected delete attempted, got %v", f.calls)
	}
	if _, ok := m.Tree().Find("42"); !ok {
		t.Error("expected card 42 kept")
	}
	if m.Banner() != msgDeleteFailed {
		t.Errorf("expected banner %q, got %q", msgDeleteFailed, m.Banner())
	}
}

func TestSampleData_SeedsEmptyBackend(t *testing.T) {
	f := newFakeAPI()
	opts := testOptions()
	opts.SampleData = true
	m := New(f, opts)
	m = drain(t, m, m.Init())

	if f.count("create") != 1 {
		t.Fatalf("expected one create, got %v", f.calls)
	}
	if m.Tree().Count != 1 || m.Tree().Cards[0].Note.Title != welcomeTitle {
		t.Errorf("expected welcome note shown, got %+v", m.Tree())
	}
}

func TestSampleData_SkipsWhenNotesExist(t *testing.T) {
	f := newFakeAPI(note("1", "A", "a", 0))
	opts := testOptions()
	opts.SampleData = true
	m := New(f, opts)
	m = drain(t, m, m.Init())

	if f.count("create") != 0 {
		t.Errorf("expected no create, got %v", f.calls)
	}
}

func TestSearch_FiltersVisibleCards(t *testing.T) {
	f := newFakeAPI(
		note("1", "Groceries", "milk eggs", 0),
		note("2", "Work", "standup", 1),
		note("3", "Breakfast", "eggs and toast", 2),
	)
	m := loaded(t, f)

	m = press(m, "/", "eggs")
	if got := len(m.visibleCards()); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
	m = press(m, "enter")
	if m.CapturesKeys() {
		t.Error("expected list focused after enter")
	}
	if m.query != "eggs" {
		t.Errorf("expected query kept, got %q", m.query)
	}

	m = press(m, "esc")
	if len(m.visibleCards()) != 3 {
		t.Error("expected filter cleared")
	}
}

func TestCursorMovementAndClamp(t *testing.T) {
	f := newFakeAPI(note("1", "A", "a", 0), note("2", "B", "b", 1), note("3", "C", "c", 2))
	m := loaded(t, f)

	m = press(m, "j", "j", "j")
	if m.cursor != 2 {
		t.Errorf("expected cursor at last card, got %d", m.cursor)
	}
	m, _ = m.Update(noteDeletedMsg{id: "1"})
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", m.cursor)
	}
	m = press(m, "g")
	if m.cursor != 0 {
		t.Errorf("expected cursor at top, got %d", m.cursor)
	}
}

func TestClipboardResult(t *testing.T) {
	m := New(newFakeAPI(), testOptions())
	m, _ = m.Update(clipboardResultMsg{err: errors.New("no clipboard")})
	if !hasToast(m, msgCopyFailed) {
		t.Errorf("expected failure toast, got %v", toastTexts(m))
	}
	m, _ = m.Update(clipboardResultMsg{})
	if !hasToast(m, msgCopied) {
		t.Errorf("expected copied toast, got %v", toastTexts(m))
	}
}

func TestWindow_KeepsCursorVisible(t *testing.T) {
	rendered := []string{"a\na", "b\nb", "c\nc", "d\nd"}
	start, end := window(rendered, 3, 4)
	if start != 2 || end != 4 {
		t.Errorf("expected [2,4), got [%d,%d)", start, end)
	}
	start, end = window(rendered, 0, 5)
	if start != 0 || end != 2 {
		t.Errorf("expected [0,2), got [%d,%d)", start, end)
	}
}

func startBackend(t *testing.T) *api.Client {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := server.New(store.NewMemoryStore())
	srv.RegisterFiberRoutes()
	go func() {
		_ = srv.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = srv.Shutdown()
	})
	return api.New("http://"+ln.Addr().String(), 2*time.Second)
}

func TestRoundTripAgainstBackend(t *testing.T) {
	client := startBackend(t)
	m := New(client, testOptions())
	m.SetSize(80, 40)
	m = drain(t, m, m.Init())
	if !m.Tree().Empty {
		t.Fatalf("expected empty backend, got %+v", m.Tree())
	}

	m.form.Create.SetValues("Groceries", "milk\n<b>eggs</b>")
	m.form.Revalidate()
	m = drain(t, m, m.SubmitCreate())
	if m.Tree().Count != 1 {
		t.Fatalf("expected one note, got %+v (banner %q)", m.Tree(), m.Banner())
	}
	card := m.Tree().Cards[0]
	if card.Title != "Groceries" || card.Note.Content != "milk\n<b>eggs</b>" {
		t.Errorf("unexpected card %+v", card)
	}

	m.OpenEdit(card.Note)
	m.form.Edit.SetValues("Groceries", "bread")
	m = drain(t, m, m.SubmitEdit())
	card, ok := m.Tree().Find(card.Note.ID)
	if !ok || card.Note.Content != "bread" {
		t.Fatalf("expected updated card, got %+v (banner %q)", card, m.Banner())
	}

	m.Remove(card.Note.ID)
	m = drain(t, m, func() tea.Msg { return shared.ConfirmationResultMsg{Confirmed: true} })
	if !m.Tree().Empty {
		t.Errorf("expected empty tree after delete, got %+v", m.Tree())
	}
	if m.Banner() != "" {
		t.Errorf("expected no banner, got %q", m.Banner())
	}
}
