package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cctail/cctail/internal/render"
	"github.com/cctail/cctail/internal/stream"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestApp() App {
	records := make(chan stream.Record)
	close(records)
	return NewApp(Config{
		Source:  "stdin",
		Version: "test",
		Records: records,
		Render:  render.Options{},
	})
}

func sized(t *testing.T, a App) App {
	t.Helper()
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app, ok := model.(App)
	require.True(t, ok)
	return app
}

func TestApp_NotReadyBeforeWindowSize(t *testing.T) {
	a := newTestApp()
	assert.Equal(t, "Initializing...", a.View())
}

func TestApp_WindowSizeMakesReady(t *testing.T) {
	a := sized(t, newTestApp())
	assert.True(t, a.ready)
	assert.Contains(t, a.View(), "cctail vtest")
	assert.Contains(t, a.View(), "stdin")
}

func TestApp_RecordAppendsContent(t *testing.T) {
	a := sized(t, newTestApp())

	model, cmd := a.Update(recordMsg{record: stream.Record{
		Kind: stream.KindStreamEvent,
		Text: "hello from the stream",
	}})
	a = model.(App)

	assert.Contains(t, a.content, "hello from the stream")
	// The model must re-arm the channel read.
	assert.NotNil(t, cmd)
}

func TestApp_EmptyRecordAddsNothing(t *testing.T) {
	a := sized(t, newTestApp())

	model, _ := a.Update(recordMsg{record: stream.Record{Kind: stream.KindUnknown}})
	a = model.(App)
	assert.Empty(t, a.content)
}

func TestApp_ToolNoticeRendered(t *testing.T) {
	a := sized(t, newTestApp())

	model, _ := a.Update(recordMsg{record: stream.Record{
		Kind:             stream.KindAssistant,
		ToolName:         "Grep",
		ToolInputSummary: "func main",
	}})
	a = model.(App)
	assert.Contains(t, a.content, "Grep")
	assert.Contains(t, a.content, "func main")
}

func TestApp_StreamDone(t *testing.T) {
	a := sized(t, newTestApp())

	model, _ := a.Update(streamDoneMsg{})
	a = model.(App)
	assert.True(t, a.done)
	assert.Contains(t, a.View(), "stream closed")
}

func TestApp_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		a := sized(t, newTestApp())

		var msg tea.KeyMsg
		if key == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}

		model, cmd := a.Update(msg)
		a = model.(App)
		assert.True(t, a.quitting, "key %s", key)
		require.NotNil(t, cmd, "key %s", key)
		assert.Empty(t, a.View())
	}
}

func TestWaitForRecord(t *testing.T) {
	records := make(chan stream.Record, 1)
	records <- stream.Record{Kind: stream.KindUser}

	msg := waitForRecord(records)()
	rec, ok := msg.(recordMsg)
	require.True(t, ok)
	assert.Equal(t, stream.KindUser, rec.record.Kind)

	close(records)
	msg = waitForRecord(records)()
	assert.IsType(t, streamDoneMsg{}, msg)
}
