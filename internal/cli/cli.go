package cli

import (
	"context"
	"fmt"
	"io"

	"noteboard/internal/notes"
)

// NoteAPI is the subset of the notes backend the commands need.
type NoteAPI interface {
	ListNotes(ctx context.Context) ([]notes.Note, error)
	CreateNote(ctx context.Context, title, content string) (notes.Note, error)
	UpdateNote(ctx context.Context, id notes.ID, title, content string) error
	DeleteNote(ctx context.Context, id notes.ID) error
}

// Runner executes one-shot commands against the backend.
type Runner struct {
	API    NoteAPI
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the CLI with the given arguments and returns the exit code.
// The first argument should be the namespace ("note").
func (r Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "note", "notes", "n":
		return r.runNoteCommand(ctx, subArgs)
	case "help", "-h", "--help":
		r.printUsage()
		return 0
	default:
		fmt.Fprintf(r.Stderr, "Unknown command: %s\n", namespace)
		r.printUsage()
		return 1
	}
}

func (r Runner) runNoteCommand(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.printNoteUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return r.runAdd(ctx, cmdArgs)
	case "list", "ls", "l":
		return r.runList(ctx, cmdArgs)
	case "show", "cat":
		return r.runShow(ctx, cmdArgs)
	case "edit", "e":
		return r.runEdit(ctx, cmdArgs)
	case "delete", "rm", "del":
		return r.runDelete(ctx, cmdArgs)
	case "html":
		return r.runHTML(ctx, cmdArgs)
	case "help", "-h", "--help":
		r.printNoteUsage()
		return 0
	default:
		fmt.Fprintf(r.Stderr, "Unknown note command: %s\n", command)
		r.printNoteUsage()
		return 1
	}
}

func (r Runner) printUsage() {
	fmt.Fprintln(r.Stdout, `noteboard - Terminal notes manager

Usage: noteboard [flags] [command] [arguments]

Commands:
  note        Note commands (list, add, edit, delete, ...)

Flags:
  -a, -api <url>    Notes backend URL (default http://localhost:5000)

Running noteboard without arguments launches the interactive TUI.
Use "noteboard note help" for note subcommands.`)
}

func (r Runner) printNoteUsage() {
	fmt.Fprintln(r.Stdout, `noteboard note - Note commands

Usage: noteboard note <command> [arguments]

Commands:
  list, ls, l   List notes, newest first
                noteboard note list
                noteboard note list -q groceries   # Fuzzy filter

  add, a        Add a note
                noteboard note add "Title" "Content"

  show, cat     Print one note
                noteboard note show <id>

  edit, e       Change a note's title and/or content
                noteboard note edit <id> -t "New title" -c "New content"

  delete, rm    Delete a note
                noteboard note delete <id>

  html          Print the notes as an HTML page

  help          Show this help message`)
}
