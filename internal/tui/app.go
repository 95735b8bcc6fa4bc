package tui

import (
	"noteboard/internal/config"
	"noteboard/internal/logs"
	"noteboard/internal/tui/board"
	"noteboard/internal/tui/notify"
	"noteboard/internal/tui/shared"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusBarHeight = 2

// AppModel is the root model: it owns the notes board, the help overlay
// and the status bar.
type AppModel struct {
	cfg      *config.Config
	board    board.Model
	showHelp bool
	width    int
	height   int
	ready    bool
}

// BoardOptions converts the loaded configuration into board settings.
func BoardOptions(cfg *config.Config) board.Options {
	return board.Options{
		Notify: notify.Timings{
			Toast:  cfg.ToastDuration,
			Fade:   cfg.ToastFade,
			Banner: cfg.ErrorDuration,
		},
		RemoveDelay:     cfg.RemoveDelay,
		SampleData:      cfg.SampleData,
		SampleDataDelay: cfg.SampleDataDelay,
	}
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, client board.NoteAPI) AppModel {
	return AppModel{
		cfg:   cfg,
		board: board.New(client, BoardOptions(cfg)),
	}
}

func (m AppModel) Init() tea.Cmd {
	logs.Logger.Printf("Syncing with %s", m.cfg.APIURL)
	return m.board.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.board.SetSize(msg.Width, msg.Height-statusBarHeight)
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Text fields and dialogs get every other key.
		if !m.board.CapturesKeys() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	if m.width < minWidth || m.height < minHeight {
		return shared.CenterContent(
			lipgloss.PlaceHorizontal(m.width, lipgloss.Center, HelpStyle.Render("Window too small")),
			m.height,
		)
	}

	statusText := m.cfg.APIURL + " | n:new e:edit d:delete /:search r:reload | ?:help | q:quit"
	if m.board.CapturesKeys() {
		statusText = m.cfg.APIURL + " | esc: back | ctrl+c: quit"
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.board.View(), statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	sections := []shared.HelpSection{
		{
			Title: "Global",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
	}
	sections = append(sections, board.HelpSections()...)
	return shared.RenderTitledHelpPopup("Noteboard - Keyboard Shortcuts", sections, m.width, m.height)
}
