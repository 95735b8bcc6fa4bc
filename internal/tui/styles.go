package tui

import "noteboard/internal/tui/theme"

const (
	minWidth  = 30
	minHeight = 12
)

var (
	// Status bar
	StatusBarStyle = theme.StatusBar

	// Help text
	HelpStyle = theme.HelpHint
)
