package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/surfapi"
)

// beachesFetchedMsg is sent when the beach catalog has been loaded
type beachesFetchedMsg struct {
	beaches []models.BeachOption
	err     error
}

// conditionsFetchedMsg is sent when a lookup completes
type conditionsFetchedMsg struct {
	beachID    string
	conditions *models.Conditions
	err        error
}

// beachSavedMsg is sent when a registration request completes
type beachSavedMsg struct {
	beach models.Beach
	err   error
}

// beachDeletedMsg is sent when a deletion request completes
type beachDeletedMsg struct {
	beachID string
	err     error
}

// requestContext bounds a request by timeout; zero means no deadline
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// fetchBeaches loads the beach catalog in the background
func fetchBeaches(client surfapi.Client, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		beaches, err := client.ListBeaches(ctx)
		return beachesFetchedMsg{beaches: beaches, err: err}
	}
}

// lookupConditions fetches the current conditions for a beach
func lookupConditions(client surfapi.Client, timeout time.Duration, beachID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		conditions, err := client.GetConditions(ctx, beachID)
		return conditionsFetchedMsg{beachID: beachID, conditions: conditions, err: err}
	}
}

// saveBeach registers a validated beach
func saveBeach(client surfapi.Client, timeout time.Duration, beach models.Beach) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		err := client.AddBeach(ctx, beach)
		return beachSavedMsg{beach: beach, err: err}
	}
}

// deleteBeach removes a beach after the user confirmed
func deleteBeach(client surfapi.Client, timeout time.Duration, beachID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		err := client.DeleteBeach(ctx, beachID)
		return beachDeletedMsg{beachID: beachID, err: err}
	}
}
