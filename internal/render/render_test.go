package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"noteboard/internal/notes"
)

func TestRender_Empty(t *testing.T) {
	tree := Render(nil)
	if !tree.Empty {
		t.Error("expected empty state")
	}
	if tree.Count != 0 {
		t.Errorf("expected count 0, got %d", tree.Count)
	}
	if len(tree.Cards) != 0 {
		t.Errorf("expected no cards, got %d", len(tree.Cards))
	}
}

func TestRender_NewestFirst(t *testing.T) {
	tree := Render([]notes.Note{
		{ID: "1", Title: "older", Content: "a", Timestamp: notes.ParseTimestamp("2024-01-01T00:00:00Z")},
		{ID: "2", Title: "newer", Content: "b", Timestamp: notes.ParseTimestamp("2024-02-01T00:00:00Z")},
	})

	if tree.Empty {
		t.Fatal("expected non-empty tree")
	}
	if tree.Count != 2 {
		t.Errorf("expected count 2, got %d", tree.Count)
	}
	if tree.Cards[0].Note.ID != "2" || tree.Cards[1].Note.ID != "1" {
		t.Errorf("expected order 2,1, got %s,%s", tree.Cards[0].Note.ID, tree.Cards[1].Note.ID)
	}
}

func TestRender_StableTies(t *testing.T) {
	ts := notes.ParseTimestamp("2024-01-01T00:00:00Z")
	tree := Render([]notes.Note{
		{ID: "a", Title: "a", Content: "a", Timestamp: ts},
		{ID: "b", Title: "b", Content: "b", Timestamp: ts},
	})
	if tree.Cards[0].Note.ID != "a" || tree.Cards[1].Note.ID != "b" {
		t.Error("expected input order for equal timestamps")
	}
}

func TestRender_CardActions(t *testing.T) {
	tree := Render([]notes.Note{{ID: "1", Title: "t", Content: "c"}})
	actions := tree.Cards[0].Actions
	if len(actions) != 2 || actions[0] != ActionEdit || actions[1] != ActionDelete {
		t.Errorf("unexpected actions %v", actions)
	}
}

func TestRender_ScriptIsLiteral(t *testing.T) {
	tree := Render([]notes.Note{{ID: "1", Title: "<script>", Content: "x"}})
	if tree.Cards[0].Title != "<script>" {
		t.Errorf("expected literal title, got %q", tree.Cards[0].Title)
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, tree); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Error("expected script tag to be escaped in html output")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped title in html output, got %s", out)
	}
}

func TestRender_ContentLinesPreserved(t *testing.T) {
	tree := Render([]notes.Note{{ID: "1", Title: "t", Content: "one\r\ntwo\nthree"}})
	lines := tree.Cards[0].Lines
	if len(lines) != 3 || lines[0] != "one" || lines[2] != "three" {
		t.Errorf("unexpected lines %q", lines)
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, tree); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	if !strings.Contains(buf.String(), "one<br>two<br>three") {
		t.Errorf("expected <br> line breaks, got %s", buf.String())
	}
}

func TestRender_HTMLShowsID(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, Render([]notes.Note{{ID: "42", Title: "t", Content: "c"}})); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	if !strings.Contains(buf.String(), `<span class="note-id">#42</span>`) {
		t.Errorf("expected note id in footer, got %s", buf.String())
	}
}

func TestRender_EmptyHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, Render(nil)); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	if !strings.Contains(buf.String(), "empty-state") {
		t.Error("expected empty-state placeholder")
	}
	if !strings.Contains(buf.String(), "(0)") {
		t.Error("expected count 0")
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "hello", "hello"},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"osc title", "\x1b]0;pwned\x07ok", "ok"},
		{"bell", "a\x07b", "ab"},
		{"newline kept", "a\nb", "a\nb"},
		{"carriage return", "a\r\nb", "a\nb"},
		{"tab", "a\tb", "a    b"},
		{"markup kept literal", "<b>bold</b>", "<b>bold</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.in); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeTitle_SingleLine(t *testing.T) {
	if got := EscapeTitle("two\nlines  here"); got != "two lines here" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestTreeWithout(t *testing.T) {
	tree := Render([]notes.Note{
		{ID: "1", Title: "a", Content: "a"},
		{ID: "42", Title: "b", Content: "b"},
	})

	after := tree.Without("42")
	if _, ok := after.Find("42"); ok {
		t.Error("expected card 42 removed")
	}
	if after.Count != 1 {
		t.Errorf("expected count 1, got %d", after.Count)
	}
	if _, ok := tree.Find("42"); !ok {
		t.Error("expected original tree untouched")
	}

	if last := after.Without("1"); !last.Empty {
		t.Error("expected empty state after removing last card")
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := notes.NewTimestamp(time.Date(2024, 3, 5, 14, 7, 0, 0, time.Local))
	if got := FormatTimestamp(ts); got != "Mar 5, 2024, 02:07 PM" {
		t.Errorf("unexpected format %q", got)
	}
	if got := FormatTimestamp(notes.ParseTimestamp("someday")); got != "someday" {
		t.Errorf("expected raw fallback, got %q", got)
	}
}
