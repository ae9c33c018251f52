package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertDialog is a blocking message. When reload is set, dismissing it
// refreshes the catalog; otherwise the user returns to returnTo.
type alertDialog struct {
	message  string
	reload   bool
	returnTo AppState
}

func (m Model) showAlert(message string, reload bool, returnTo AppState) Model {
	m.alert = alertDialog{message: message, reload: reload, returnTo: returnTo}
	m.state = StateAlert
	return m
}

func (m Model) dismissAlert() (tea.Model, tea.Cmd) {
	a := m.alert
	m.alert = alertDialog{}
	if a.reload {
		return m.reload()
	}
	m.state = a.returnTo
	return m, nil
}

func (m Model) viewAlert() string {
	// Only successful mutations reload
	msgStyle := valueStyle
	if m.alert.reload {
		msgStyle = successStyle
	}
	box := alertBoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		msgStyle.Render(m.alert.message),
		"",
		helpStyle.Padding(0).Render("Press any key to continue"),
	))
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), box)
}

func (m Model) viewConfirm() string {
	question := fmt.Sprintf("Are you sure you want to delete the beach %q?", m.pendingDelete)
	box := confirmBoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		valueStyle.Render(question),
		"",
		helpStyle.Padding(0).Render("Y: Delete • any other key: Cancel"),
	))
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), box)
}
