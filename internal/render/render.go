package render

import (
	"noteboard/internal/notes"
)

// Action is something the user can do to a rendered card.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// TimestampLayout is how card timestamps are displayed.
const TimestampLayout = "Jan 2, 2006, 03:04 PM"

// Card is the display form of one note. Title and Lines are already escaped.
type Card struct {
	Note      notes.Note
	Title     string
	Lines     []string
	Timestamp string
	Actions   []Action
}

// Tree is the rendered list. Empty marks the placeholder state.
type Tree struct {
	Empty bool
	Count int
	Cards []Card
}

// Render orders ns newest first and builds a card for each note.
func Render(ns []notes.Note) Tree {
	if len(ns) == 0 {
		return Tree{Empty: true}
	}

	sorted := notes.SortNewestFirst(ns)
	cards := make([]Card, 0, len(sorted))
	for _, n := range sorted {
		cards = append(cards, NewCard(n))
	}
	return Tree{Count: len(cards), Cards: cards}
}

// NewCard renders a single note.
func NewCard(n notes.Note) Card {
	return Card{
		Note:      n,
		Title:     EscapeTitle(n.Title),
		Lines:     EscapeLines(n.Content),
		Timestamp: FormatTimestamp(n.Timestamp),
		Actions:   []Action{ActionEdit, ActionDelete},
	}
}

// FormatTimestamp renders ts in local time, falling back to the raw text.
func FormatTimestamp(ts notes.Timestamp) string {
	if ts.IsZero() {
		return EscapeTitle(ts.Raw)
	}
	return ts.Time.Local().Format(TimestampLayout)
}

// Without returns a copy of the tree with the card for id removed.
func (t Tree) Without(id notes.ID) Tree {
	cards := make([]Card, 0, len(t.Cards))
	for _, c := range t.Cards {
		if c.Note.ID != id {
			cards = append(cards, c)
		}
	}
	if len(cards) == 0 {
		return Tree{Empty: true}
	}
	return Tree{Count: len(cards), Cards: cards}
}

// Find returns the card for id.
func (t Tree) Find(id notes.ID) (Card, bool) {
	for _, c := range t.Cards {
		if c.Note.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Notes returns the notes in display order.
func (t Tree) Notes() []notes.Note {
	ns := make([]notes.Note, 0, len(t.Cards))
	for _, c := range t.Cards {
		ns = append(ns, c.Note)
	}
	return ns
}
