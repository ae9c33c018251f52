package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/surfapi"
	"github.com/ngmaloney/surf-terminal/internal/ui"
)

// demoClient serves mock data so the UI can be tried without a backend
type demoClient struct {
	mu        sync.Mutex
	beaches   map[string]models.Beach
	protected map[string]bool
}

func newDemoClient() *demoClient {
	c := &demoClient{
		beaches:   make(map[string]models.Beach),
		protected: map[string]bool{"pantin": true},
	}
	for _, b := range []models.Beach{
		{ID: "itacare", Name: "Itacaré", Lat: -14.28, Country: models.CountryBrazil},
		{ID: "praia-do-rosa", Name: "Praia do Rosa", Lat: -28.13, Country: models.CountryBrazil},
		{ID: "pantin", Name: "Pantín", Lat: 43.64, Country: models.CountrySpain},
		{ID: "razo", Name: "Playa de Razo", Lat: 43.29, Country: models.CountrySpain},
	} {
		c.beaches[b.ID] = b
	}
	return c
}

func (c *demoClient) ListBeaches(ctx context.Context) ([]models.BeachOption, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	opts := make([]models.BeachOption, 0, len(c.beaches))
	for _, b := range c.beaches {
		opts = append(opts, models.BeachOption{ID: b.ID, Name: b.Name, Country: b.Country})
	}
	// Grouped by country, then by name, like the server page
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Country != opts[j].Country {
			return opts[i].Country < opts[j].Country
		}
		return opts[i].Name < opts[j].Name
	})
	return opts, nil
}

func (c *demoClient) GetConditions(ctx context.Context, beachID string) (*models.Conditions, error) {
	c.mu.Lock()
	b, ok := c.beaches[beachID]
	c.mu.Unlock()
	if !ok {
		return nil, &surfapi.APIError{StatusCode: 404, Detail: "Playa no encontrada"}
	}

	// Let the spinner show
	time.Sleep(400 * time.Millisecond)

	height, period, waveDeg := 1.4, 9.0, 300.0
	speed, windDeg := 14.5, 45.0
	lat := b.Lat
	return &models.Conditions{
		Beach:     b.Name,
		Latitude:  &lat,
		Longitude: b.Long,
		Current: models.Forecast{
			Waves: models.WaveData{
				HeightMeters:     &height,
				PeriodSeconds:    &period,
				DirectionText:    models.DirectionFromDegrees(&waveDeg),
				DirectionDegrees: &waveDeg,
			},
			Wind: models.WindData{
				SpeedKmh:         &speed,
				DirectionText:    models.DirectionFromDegrees(&windDeg),
				DirectionDegrees: &windDeg,
			},
			ReadingTime: time.Now().Truncate(time.Hour).Format("2006-01-02T15:04"),
		},
	}, nil
}

func (c *demoClient) AddBeach(ctx context.Context, beach models.Beach) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.beaches[beach.ID]; exists {
		return &surfapi.APIError{StatusCode: 400, Detail: "Ya existe una playa con ese ID"}
	}
	c.beaches[beach.ID] = beach
	return nil
}

func (c *demoClient) DeleteBeach(ctx context.Context, beachID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.protected[beachID] {
		return &surfapi.APIError{StatusCode: 403, Detail: "No se puede eliminar una playa protegida"}
	}
	if _, ok := c.beaches[beachID]; !ok {
		return &surfapi.APIError{StatusCode: 404, Detail: "Playa no encontrada"}
	}
	delete(c.beaches, beachID)
	return nil
}

// This demo runs the UI against in-memory mock data
func main() {
	p := tea.NewProgram(ui.NewModel(newDemoClient()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
