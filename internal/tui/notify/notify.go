package notify

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"noteboard/internal/tui/theme"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Toast is one transient message. Fading toasts are about to be removed.
type Toast struct {
	ID     int
	Level  Level
	Text   string
	Fading bool
}

// Timings controls how long notifications stay on screen.
type Timings struct {
	Toast  time.Duration
	Fade   time.Duration
	Banner time.Duration
}

type toastExpiredMsg struct{ id int }

type toastRemovedMsg struct{ id int }

type bannerExpiredMsg struct{ id int }

// Surface holds the stacked toasts and the single error banner. All state
// changes happen through its methods from the owning model's Update.
type Surface struct {
	timings  Timings
	toasts   []Toast
	nextID   int
	banner   string
	bannerID int
}

// New creates an empty surface.
func New(timings Timings) Surface {
	return Surface{timings: timings}
}

// Toast adds a toast and returns the timer that expires it.
func (s *Surface) Toast(level Level, text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Level: level, Text: text})
	return tea.Tick(s.timings.Toast, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (s *Surface) Info(text string) tea.Cmd {
	return s.Toast(LevelInfo, text)
}

func (s *Surface) Success(text string) tea.Cmd {
	return s.Toast(LevelSuccess, text)
}

func (s *Surface) Failure(text string) tea.Cmd {
	return s.Toast(LevelError, text)
}

// Error shows text in the banner, replacing any current banner. Only the
// timer started here can clear it.
func (s *Surface) Error(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	s.bannerID++
	id := s.bannerID
	s.banner = text
	return tea.Tick(s.timings.Banner, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

// ClearBanner hides the banner immediately.
func (s *Surface) ClearBanner() {
	s.banner = ""
}

// Update handles the surface's own timer messages and ignores everything else.
func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		for i := range s.toasts {
			if s.toasts[i].ID == msg.id {
				s.toasts[i].Fading = true
				id := msg.id
				return tea.Tick(s.timings.Fade, func(time.Time) tea.Msg {
					return toastRemovedMsg{id: id}
				})
			}
		}
	case toastRemovedMsg:
		for i := range s.toasts {
			if s.toasts[i].ID == msg.id {
				s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
				break
			}
		}
	case bannerExpiredMsg:
		if msg.id == s.bannerID {
			s.banner = ""
		}
	}
	return nil
}

// Banner returns the current error banner text, empty when hidden.
func (s Surface) Banner() string {
	return s.banner
}

// Toasts returns the visible toasts, oldest first.
func (s Surface) Toasts() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextBright).
			Background(theme.Danger).
			Padding(0, 1)

	toastInfoStyle    = lipgloss.NewStyle().Foreground(theme.TextBright).Background(theme.Primary)
	toastSuccessStyle = lipgloss.NewStyle().Foreground(theme.TextBright).Background(theme.Success)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(theme.TextBright).Background(theme.Danger)
	toastFadingStyle  = lipgloss.NewStyle().Foreground(theme.TextMuted).Background(theme.Surface)
)

func toastStyle(t Toast) lipgloss.Style {
	if t.Fading {
		return toastFadingStyle
	}
	switch t.Level {
	case LevelSuccess:
		return toastSuccessStyle
	case LevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}

// BannerView renders the banner across width, or "" when hidden.
func (s Surface) BannerView(width int) string {
	if s.banner == "" || width <= 0 {
		return ""
	}
	text := ansi.Truncate(s.banner, max(1, width-2), "…")
	return bannerStyle.Width(width).Render(text)
}

// ToastsView renders the toast stack right-aligned, one per line.
func (s Surface) ToastsView(width int) string {
	if len(s.toasts) == 0 || width <= 0 {
		return ""
	}
	lines := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		text := ansi.Truncate(t.Text, max(1, width-4), "…")
		pill := toastStyle(t).Render(" " + text + " ")
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, pill))
	}
	return strings.Join(lines, "\n")
}
