package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"noteboard/internal/api"
	"noteboard/internal/notes"
	"noteboard/internal/render"
)

func (r Runner) runAdd(ctx context.Context, args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(r.Stderr, "Error: title and content required")
		fmt.Fprintln(r.Stderr, `Usage: noteboard note add "Title" "Content"`)
		return 1
	}

	title := args[0]
	content := strings.Join(args[1:], " ")
	if !notes.Valid(title, content) {
		fmt.Fprintln(r.Stderr, "Error: Please fill in both title and content")
		return 1
	}
	r.warnOverLimit(title, content)

	n, err := r.API.CreateNote(ctx, strings.TrimSpace(title), strings.TrimSpace(content))
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error adding note: %s\n", api.UserMessage(err, err.Error()))
		return 1
	}

	fmt.Fprintf(r.Stdout, "Added: %s\n", render.EscapeTitle(n.Title))
	fmt.Fprintf(r.Stdout, "ID: %s\n", n.ID)
	return 0
}

func (r Runner) runList(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(r.Stderr)
	query := fs.String("q", "", "Fuzzy filter on title and content")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	list, err := r.API.ListNotes(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error loading notes: %v\n", err)
		return 1
	}
	list = notes.Filter(list, *query)

	tree := render.Render(list)
	if tree.Empty {
		fmt.Fprintln(r.Stdout, "No notes found.")
		return 0
	}

	for _, c := range tree.Cards {
		r.printCard(c, false)
	}

	fmt.Fprintf(r.Stdout, "\n%d note(s)\n", tree.Count)
	return 0
}

func (r Runner) runShow(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stderr, "Error: note ID required")
		fmt.Fprintln(r.Stderr, "Usage: noteboard note show <id>")
		return 1
	}

	n, err := r.findNote(ctx, args[0])
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error: %v\n", err)
		return 1
	}

	r.printCard(render.NewCard(n), true)
	return 0
}

func (r Runner) runEdit(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stderr, "Error: note ID required")
		fmt.Fprintln(r.Stderr, `Usage: noteboard note edit <id> -t "Title" -c "Content"`)
		return 1
	}

	id := args[0]
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(r.Stderr)
	title := fs.String("t", "", "New title")
	content := fs.String("c", "", "New content")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}
	if strings.TrimSpace(*title) == "" && strings.TrimSpace(*content) == "" {
		fmt.Fprintln(r.Stderr, "Error: nothing to change, pass -t and/or -c")
		return 1
	}

	n, err := r.findNote(ctx, id)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error: %v\n", err)
		return 1
	}

	newTitle, newContent := n.Title, n.Content
	if t := strings.TrimSpace(*title); t != "" {
		newTitle = t
	}
	if c := strings.TrimSpace(*content); c != "" {
		newContent = c
	}
	r.warnOverLimit(newTitle, newContent)

	if err := r.API.UpdateNote(ctx, n.ID, newTitle, newContent); err != nil {
		fmt.Fprintf(r.Stderr, "Error updating note: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.Stdout, "Updated: %s\n", render.EscapeTitle(newTitle))
	return 0
}

func (r Runner) runDelete(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stderr, "Error: note ID required")
		fmt.Fprintln(r.Stderr, "Usage: noteboard note delete <id>")
		return 1
	}

	n, err := r.findNote(ctx, args[0])
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := r.API.DeleteNote(ctx, n.ID); err != nil {
		fmt.Fprintf(r.Stderr, "Error deleting note: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.Stdout, "Deleted: %s\n", render.EscapeTitle(n.Title))
	return 0
}

func (r Runner) runHTML(ctx context.Context, args []string) int {
	list, err := r.API.ListNotes(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error loading notes: %v\n", err)
		return 1
	}
	if err := render.WriteHTML(r.Stdout, render.Render(list)); err != nil {
		fmt.Fprintf(r.Stderr, "Error rendering notes: %v\n", err)
		return 1
	}
	return 0
}

func (r Runner) warnOverLimit(title, content string) {
	if notes.OverLimit(title, notes.MaxTitleLength) {
		fmt.Fprintf(r.Stderr, "Warning: title is %s characters\n", notes.Counter(title, notes.MaxTitleLength))
	}
	if notes.OverLimit(content, notes.MaxContentLength) {
		fmt.Fprintf(r.Stderr, "Warning: content is %s characters\n", notes.Counter(content, notes.MaxContentLength))
	}
}

func (r Runner) printCard(c render.Card, full bool) {
	fmt.Fprintf(r.Stdout, "[%s] %s  %s\n", c.Note.ID, c.Title, c.Timestamp)
	lines := c.Lines
	if !full && len(lines) > 1 {
		lines = append(lines[:1:1], "…")
	}
	for _, line := range lines {
		fmt.Fprintf(r.Stdout, "        %s\n", line)
	}
}

func (r Runner) findNote(ctx context.Context, id string) (notes.Note, error) {
	list, err := r.API.ListNotes(ctx)
	if err != nil {
		return notes.Note{}, err
	}
	if i := notes.IndexOf(list, notes.ID(id)); i >= 0 {
		return list[i], nil
	}
	return notes.Note{}, fmt.Errorf("no note found with ID: %s", id)
}
