package ui

import (
	"context"
	"sync"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// mockClient records every call so tests can assert which requests were made
type mockClient struct {
	mu sync.Mutex

	beaches    []models.BeachOption
	conditions *models.Conditions

	listErr   error
	lookupErr error
	addErr    error
	deleteErr error

	listCalls  int
	lookups    []string
	added      []models.Beach
	deletedIDs []string
}

func (c *mockClient) ListBeaches(ctx context.Context) ([]models.BeachOption, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.beaches, nil
}

func (c *mockClient) GetConditions(ctx context.Context, beachID string) (*models.Conditions, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups = append(c.lookups, beachID)
	if c.lookupErr != nil {
		return nil, c.lookupErr
	}
	return c.conditions, nil
}

func (c *mockClient) AddBeach(ctx context.Context, beach models.Beach) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.added = append(c.added, beach)
	return c.addErr
}

func (c *mockClient) DeleteBeach(ctx context.Context, beachID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletedIDs = append(c.deletedIDs, beachID)
	return c.deleteErr
}

func (c *mockClient) requestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listCalls + len(c.lookups) + len(c.added) + len(c.deletedIDs)
}

func float(v float64) *float64 {
	return &v
}

func testBeaches() []models.BeachOption {
	return []models.BeachOption{
		{ID: "itacare", Name: "Itacaré", Country: models.CountryBrazil},
		{ID: "pantin", Name: "Pantín", Country: models.CountrySpain},
		{ID: "razo", Name: "Playa de Razo", Country: models.CountrySpain},
	}
}

func testConditions() *models.Conditions {
	return &models.Conditions{
		Beach: "Pantín",
		Current: models.Forecast{
			Waves: models.WaveData{
				HeightMeters:     float(1.5),
				PeriodSeconds:    float(9),
				DirectionText:    "Noroeste",
				DirectionDegrees: float(315),
			},
			Wind: models.WindData{
				SpeedKmh:      float(12.4),
				DirectionText: "Sur",
			},
		},
	}
}
