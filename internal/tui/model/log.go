package model

import (
	"statusboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// AddRawLineToActivityLog appends a formatted entry, keeping at most
// MaxActivityLogLines, and marks the log dirty.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// ListenForLogEntriesCmd waits for the next entry on the logging channel.
// It returns nil once the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
