package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// cardRow is one label/value line of the conditions card
type cardRow struct {
	Label string
	Value string
}

// conditionRows formats a conditions reading for display
func conditionRows(c *models.Conditions) []cardRow {
	waves := c.Current.Waves
	wind := c.Current.Wind
	return []cardRow{
		{Label: "Waves", Value: formatNumber(waves.HeightMeters) + " m"},
		{Label: "Period", Value: formatNumber(waves.PeriodSeconds) + " s"},
		{Label: "Direction", Value: fmt.Sprintf("%s (%sº)", c.WaveDirection(), formatNumber(waves.DirectionDegrees))},
		{Label: "Wind", Value: fmt.Sprintf("%s km/h (%s)", formatNumber(wind.SpeedKmh), c.WindDirection())},
	}
}

// formatNumber prints the shortest exact form (1.5, 2, 0.25); nil is N/A
func formatNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// renderCard renders the result card at the current fade opacity
func (m Model) renderCard(width int) string {
	if m.conditions == nil {
		return paneStyle.Width(width).Render(mutedStyle.Render("Select a beach and press Enter"))
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(fadeColor(cardTitleHex, m.cardOpacity))
	label := lipgloss.NewStyle().Bold(true).Width(11).Align(lipgloss.Right).Foreground(fadeColor(cardLabelHex, m.cardOpacity))
	value := lipgloss.NewStyle().Foreground(fadeColor(cardValueHex, m.cardOpacity))
	muted := lipgloss.NewStyle().Foreground(fadeColor(cardLabelHex, m.cardOpacity))

	var content strings.Builder
	content.WriteString(title.Render(m.conditions.Beach))
	content.WriteString("\n\n")

	for _, row := range conditionRows(m.conditions) {
		content.WriteString(label.Render(row.Label+":") + " " + value.Render(row.Value))
		content.WriteString("\n")
	}

	if footer := m.cardFooter(); footer != "" {
		content.WriteString("\n")
		content.WriteString(muted.Render(footer))
	}

	return paneStyle.Width(width).Render(strings.TrimRight(content.String(), "\n"))
}

func (m Model) cardFooter() string {
	var lines []string
	c := m.conditions
	if c.Latitude != nil && c.Longitude != nil {
		lines = append(lines, fmt.Sprintf("📍 %s, %s", formatNumber(c.Latitude), formatNumber(c.Longitude)))
	}
	if c.Current.ReadingTime != "" {
		lines = append(lines, "Reading: "+strings.Replace(c.Current.ReadingTime, "T", " ", 1))
	}
	if !m.fetchedAt.IsZero() {
		lines = append(lines, "Updated "+humanize.Time(m.fetchedAt))
	}
	return strings.Join(lines, "\n")
}
