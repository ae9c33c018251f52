package models

// compassPoints uses the backend's vocabulary so fallback text matches server text
var compassPoints = []string{"Norte", "Noreste", "Este", "Sureste", "Sur", "Suroeste", "Oeste", "Noroeste"}

// DirectionFromDegrees maps a bearing to an 8-point compass name.
// A nil bearing yields "N/A".
func DirectionFromDegrees(degrees *float64) string {
	if degrees == nil {
		return "N/A"
	}
	idx := int((*degrees+22.5)/45) % 8
	if idx < 0 {
		idx += 8
	}
	return compassPoints[idx]
}
