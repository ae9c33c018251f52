package surfapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// requiredConditionKeys must be present in a conditions response. Their
// values may be null (near-shore points have no wave data) but never absent.
var requiredConditionKeys = []string{
	"playa",
	"prevision_actual.olas.altura_metros",
	"prevision_actual.olas.periodo_segundos",
	"prevision_actual.olas.direccion_texto",
	"prevision_actual.olas.direccion_grados",
	"prevision_actual.viento.velocidad_kmh",
	"prevision_actual.viento.direccion_texto",
}

// decodeConditions parses a conditions body, rejecting it when a required key is missing
func decodeConditions(body []byte) (*models.Conditions, error) {
	var tree map[string]any
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	for _, path := range requiredConditionKeys {
		if !hasKey(tree, path) {
			return nil, fmt.Errorf("failed to decode response: missing field %q", path)
		}
	}

	var conditions models.Conditions
	if err := json.Unmarshal(body, &conditions); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &conditions, nil
}

// hasKey walks a dotted path through nested JSON objects
func hasKey(tree map[string]any, path string) bool {
	parts := strings.Split(path, ".")
	node := tree
	for i, part := range parts {
		v, ok := node[part]
		if !ok {
			return false
		}
		if i == len(parts)-1 {
			return true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return false
		}
		node = next
	}
	return false
}
