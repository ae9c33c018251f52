package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Country is the country tag a beach is filed under
type Country string

const (
	CountryBrazil Country = "Brasil"
	CountrySpain  Country = "España"
)

// Countries lists the options offered by the registration form, in display order
var Countries = []Country{CountryBrazil, CountrySpain}

var (
	ErrCountryRequired = errors.New("please select a country (Brasil or España)")
	ErrFieldsRequired  = errors.New("all fields are required")
)

// Beach is the record sent to the registration endpoint.
// Long is a pointer because an unparseable longitude is sent as null.
type Beach struct {
	ID      string   `json:"id"`
	Name    string   `json:"nombre"`
	Lat     float64  `json:"lat"`
	Long    *float64 `json:"long"`
	Country Country  `json:"pais"`
}

// BeachOption is one entry of the server-rendered beach selector
type BeachOption struct {
	ID      string
	Name    string
	Country Country
}

// BeachForm holds the raw registration inputs as typed by the user
type BeachForm struct {
	ID        string
	Name      string
	Latitude  string
	Longitude string
	Country   Country // empty when no option is selected
}

// Beach validates the form and builds the record to submit.
// The country check runs first; id and name must be non-empty and the
// latitude a finite number. Longitude is left for the backend to judge.
func (f BeachForm) Beach() (Beach, error) {
	if f.Country == "" {
		return Beach{}, ErrCountryRequired
	}

	lat, ok := parseCoordinate(f.Latitude)
	if f.ID == "" || f.Name == "" || !ok {
		return Beach{}, ErrFieldsRequired
	}

	b := Beach{
		ID:      f.ID,
		Name:    f.Name,
		Lat:     lat,
		Country: f.Country,
	}
	if long, ok := parseCoordinate(f.Longitude); ok {
		b.Long = &long
	}

	return b, nil
}

func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
