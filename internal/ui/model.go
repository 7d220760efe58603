// Package ui holds small bubbletea components shared by screens.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationLifetime is how long a notification stays visible.
const NotificationLifetime = 3 * time.Second

// Notifier shows one short-lived message under a screen.
type Notifier struct {
	notification string
	style        lipgloss.Style
	seq          int
}

// ClearNotificationMsg hides the notification it was scheduled for.
type ClearNotificationMsg struct {
	seq int
}

// NewNotifier returns a Notifier rendering messages with style.
func NewNotifier(style lipgloss.Style) *Notifier {
	return &Notifier{style: style}
}

// Notify shows msg, replacing the current notification, and returns the
// command that hides it again.
func (n *Notifier) Notify(msg string) tea.Cmd {
	n.seq++
	n.notification = msg

	seq := n.seq
	return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Update hides the notification when its time is up. A clear scheduled for
// an older notification is ignored.
func (n *Notifier) Update(msg tea.Msg) {
	if clear, ok := msg.(ClearNotificationMsg); ok && clear.seq == n.seq {
		n.notification = ""
	}
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() string {
	return n.notification
}

// View appends the notification below content.
func (n *Notifier) View(content string) string {
	if n.notification == "" {
		return content
	}
	return content + "\n" + n.style.Render(n.notification)
}
