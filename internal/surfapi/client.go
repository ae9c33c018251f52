package surfapi

import (
	"context"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// Client defines the operations the terminal performs against the Surf API
type Client interface {
	// ListBeaches retrieves the beach selector as rendered by the server
	ListBeaches(ctx context.Context) ([]models.BeachOption, error)

	// GetConditions retrieves the current wave and wind reading for a beach
	GetConditions(ctx context.Context, beachID string) (*models.Conditions, error)

	// AddBeach registers a new beach
	AddBeach(ctx context.Context, beach models.Beach) error

	// DeleteBeach removes a beach by id
	DeleteBeach(ctx context.Context, beachID string) error
}
