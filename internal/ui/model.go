// Package ui holds the one-line status notifications shown under the HUD.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/touchmpv/touchmpv/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// NotifyMsg asks the model to show a notification.
type NotifyMsg string

// ClearNotificationMsg resets the notification, unless a newer one replaced it.
type ClearNotificationMsg struct {
	seq int
}

// Model encapsulates the state for displaying non-blocking terminal alerts.
type Model struct {
	notification string
	seq          int
}

// Notify returns a tea.Cmd that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg(text)
	}
}

// Set shows text until it is cleared. Used before the program runs.
func (m *Model) Set(text string) {
	m.notification = text
	m.seq++
}

// Notification returns the text on screen, empty when none.
func (m *Model) Notification() string {
	return m.notification
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.Set(string(msg))
		seq := m.seq
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{seq: seq}
		})
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.notification = ""
		}
	}
	return nil
}

// View appends the current notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Muted.Render(m.notification)
	return strings.Join(lines, "\n")
}
