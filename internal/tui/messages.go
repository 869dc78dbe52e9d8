package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cctail/cctail/internal/stream"
)

// recordMsg delivers one decoded record to the model.
type recordMsg struct {
	record stream.Record
}

// streamDoneMsg signals that the records channel was closed.
type streamDoneMsg struct{}

// waitForRecord returns a command that blocks on the records channel and
// converts the next value (or channel close) into a message.
func waitForRecord(records <-chan stream.Record) tea.Cmd {
	return func() tea.Msg {
		rec, ok := <-records
		if !ok {
			return streamDoneMsg{}
		}
		return recordMsg{record: rec}
	}
}
