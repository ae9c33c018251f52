package models

// WaveData represents the wave part of a conditions reading
type WaveData struct {
	HeightMeters     *float64 `json:"altura_metros"`
	PeriodSeconds    *float64 `json:"periodo_segundos"`
	DirectionText    string   `json:"direccion_texto"`
	DirectionDegrees *float64 `json:"direccion_grados"`
}

// WindData represents the wind part of a conditions reading
type WindData struct {
	SpeedKmh         *float64 `json:"velocidad_kmh"`
	DirectionText    string   `json:"direccion_texto"`
	DirectionDegrees *float64 `json:"direccion_grados"` // not always sent
}

// Forecast is the point-in-time reading for a beach (prevision_actual)
type Forecast struct {
	Waves       WaveData `json:"olas"`
	Wind        WindData `json:"viento"`
	ReadingTime string   `json:"momento_lectura"` // local time at the beach, e.g. "2025-06-01T12:00"
}

// Conditions is the lookup response for a single beach.
// Numeric readings are nil when the backend has no value for them.
type Conditions struct {
	Beach     string   `json:"playa"`
	Latitude  *float64 `json:"latitud"`
	Longitude *float64 `json:"longitud"`
	Current   Forecast `json:"prevision_actual"`
}

// WaveDirection returns the wave direction text, deriving it from degrees when blank
func (c *Conditions) WaveDirection() string {
	if c.Current.Waves.DirectionText != "" {
		return c.Current.Waves.DirectionText
	}
	return DirectionFromDegrees(c.Current.Waves.DirectionDegrees)
}

// WindDirection returns the wind direction text, deriving it from degrees when blank
func (c *Conditions) WindDirection() string {
	if c.Current.Wind.DirectionText != "" {
		return c.Current.Wind.DirectionText
	}
	return DirectionFromDegrees(c.Current.Wind.DirectionDegrees)
}
