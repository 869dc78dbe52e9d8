// Package tui renders the decoded event stream in a full-screen scrollable
// view built on Bubble Tea.
package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cctail/cctail/internal/logging"
	"github.com/cctail/cctail/internal/render"
	"github.com/cctail/cctail/internal/stream"
)

// Config holds everything the TUI needs to run.
type Config struct {
	// Source names the input (file path or "stdin") for the title bar.
	Source string
	// Version is the cctail version string shown in the title bar.
	Version string
	// Records is the live record feed; a closed channel ends the stream.
	Records <-chan stream.Record
	// Render controls how records are formatted.
	Render render.Options
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(render.ColorMuted)
)

// App is the top-level Bubble Tea model. It accumulates rendered records in
// a viewport and keeps the view pinned to the bottom while new records
// arrive (scrolling up disables the pin until the user returns to the
// bottom).
type App struct {
	config   Config
	sink     *render.Sink
	buf      *bytes.Buffer
	content  string
	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	done     bool
	quitting bool
}

// NewApp constructs the model. Records are formatted by a render.Sink
// writing into an internal buffer, so the TUI shows exactly what the plain
// sink would print.
func NewApp(cfg Config) App {
	buf := &bytes.Buffer{}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	return App{
		config:   cfg,
		sink:     render.NewSink(buf, cfg.Render),
		buf:      buf,
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}
}

// Init starts the spinner and the first blocking read from the record feed.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, waitForRecord(a.config.Records))
}

// Update dispatches incoming messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.ready = true
		a.viewport.Width = m.Width
		a.viewport.Height = max(m.Height-2, 1) // title + status rows
		a.viewport.SetContent(a.content)
		a.viewport.GotoBottom()
		return a, nil

	case tea.KeyMsg:
		switch m.String() {
		case "q", "ctrl+c":
			a.quitting = true
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd

	case recordMsg:
		a.appendRecord(m.record)
		return a, waitForRecord(a.config.Records)

	case streamDoneMsg:
		a.done = true
		return a, nil

	case spinner.TickMsg:
		if a.done {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// appendRecord formats one record through the sink and appends the output to
// the viewport content.
func (a *App) appendRecord(rec stream.Record) {
	a.buf.Reset()
	if err := a.sink.Render(rec); err != nil {
		return
	}
	if a.buf.Len() == 0 {
		return
	}

	pinned := a.viewport.AtBottom()
	a.content += a.buf.String()
	a.viewport.SetContent(a.content)
	if pinned {
		a.viewport.GotoBottom()
	}
}

// View renders the title bar, the viewport, and a one-line status bar.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Initializing..."
	}

	title := titleStyle.Width(a.width).Render(
		fmt.Sprintf("cctail v%s — %s", a.config.Version, a.config.Source))

	status := statusStyle.Render("stream closed — q to quit")
	if !a.done {
		status = a.spinner.View() + statusStyle.Render(" streaming — q to quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, a.viewport.View(), status)
}

// Run starts the Bubble Tea program in full-screen mode and blocks until the
// user quits.
func Run(cfg Config) error {
	logger := logging.New("tui")
	logger.Debug("starting watch view", "source", cfg.Source)

	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running watch view: %w", err)
	}
	return nil
}
