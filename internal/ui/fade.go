package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	fadeInterval = 50 * time.Millisecond
	fadeStep     = 0.2
)

// fadeTickMsg advances the card fade-in
type fadeTickMsg struct{}

func fadeTick() tea.Cmd {
	return tea.Tick(fadeInterval, func(time.Time) tea.Msg {
		return fadeTickMsg{}
	})
}

// fadeColor blends from the hidden colour towards target by opacity (0..1)
func fadeColor(target string, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return lipgloss.Color(target)
	}
	if opacity < 0 {
		opacity = 0
	}
	from, err := colorful.Hex(cardHiddenHex)
	if err != nil {
		return lipgloss.Color(target)
	}
	to, err := colorful.Hex(target)
	if err != nil {
		return lipgloss.Color(target)
	}
	return lipgloss.Color(from.BlendLab(to, opacity).Clamped().Hex())
}
