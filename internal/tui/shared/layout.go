package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// CenterContent renders content vertically centered in the available height.
func CenterContent(content string, height int) string {
	contentLines := splitLines(content)
	if len(contentLines) >= height {
		return strings.Join(contentLines, "\n")
	}

	topPad := (height - len(contentLines)) / 2
	lines := make([]string, topPad, height)
	lines = append(lines, contentLines...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// CenterWithBottomHints renders content vertically centered in the available
// height, with hint text pinned to the very bottom line.
func CenterWithBottomHints(content, hints string, height int) string {
	return withBottomHints(content, hints, height, true)
}

// TopWithBottomHints renders content from the top of the available height,
// with hint text pinned to the very bottom line.
func TopWithBottomHints(content, hints string, height int) string {
	return withBottomHints(content, hints, height, false)
}

func withBottomHints(content, hints string, height int, center bool) string {
	contentLines := splitLines(content)
	hintLines := splitLines(hints)

	gap := height - len(contentLines) - len(hintLines)
	if gap <= 0 {
		return strings.Join(append(contentLines, hintLines...), "\n")
	}

	topPad := 0
	if center {
		topPad = gap / 2
	}
	lines := make([]string, topPad, height)
	lines = append(lines, contentLines...)
	for len(lines) < height-len(hintLines) {
		lines = append(lines, "")
	}
	lines = append(lines, hintLines...)
	return strings.Join(lines, "\n")
}

// PlaceModal centers a rendered dialog in a width x height area.
func PlaceModal(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
