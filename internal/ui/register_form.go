package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// formField identifies a focusable row of the registration form
type formField int

const (
	fieldID formField = iota
	fieldName
	fieldLatitude
	fieldLongitude
	fieldCountry
	fieldCount
)

// noCountry marks the radio group as unselected
const noCountry = -1

// registerForm is the new-beach form: four text inputs and a country choice
type registerForm struct {
	inputs  [fieldCountry]textinput.Model
	country int
	focus   formField
}

func newRegisterForm() registerForm {
	placeholders := [fieldCountry]string{
		fieldID:        "ID (e.g. baldaio)",
		fieldName:      "Name (e.g. Playa de Baldaio)",
		fieldLatitude:  "Latitude",
		fieldLongitude: "Longitude",
	}

	var f registerForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.country = noCountry
	f.inputs[fieldID].Focus()
	return f
}

// values returns the raw form contents
func (f registerForm) values() models.BeachForm {
	form := models.BeachForm{
		ID:        f.inputs[fieldID].Value(),
		Name:      f.inputs[fieldName].Value(),
		Latitude:  f.inputs[fieldLatitude].Value(),
		Longitude: f.inputs[fieldLongitude].Value(),
	}
	if f.country != noCountry {
		form.Country = models.Countries[f.country]
	}
	return form
}

// setFocus moves focus to field, blurring the others
func (f *registerForm) setFocus(field formField) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	var cmd tea.Cmd
	for i := range f.inputs {
		if formField(i) == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// update handles a key press that is not form submission or cancel
func (f registerForm) update(msg tea.KeyMsg) (registerForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		cmd := f.setFocus(f.focus + 1)
		return f, cmd
	case "shift+tab", "up":
		cmd := f.setFocus(f.focus - 1)
		return f, cmd
	}

	if f.focus == fieldCountry {
		n := len(models.Countries)
		switch msg.String() {
		case "right", "l", " ":
			f.country = (f.country + 1) % n
		case "left", "h":
			if f.country == noCountry {
				f.country = n - 1
			} else {
				f.country = (f.country - 1 + n) % n
			}
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// forward passes a non-key message to the focused input
func (f registerForm) forward(msg tea.Msg) (registerForm, tea.Cmd) {
	if f.focus == fieldCountry {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f registerForm) view() string {
	labels := [fieldCount]string{
		fieldID:        "ID",
		fieldName:      "Name",
		fieldLatitude:  "Latitude",
		fieldLongitude: "Longitude",
		fieldCountry:   "Country",
	}

	var rows []string
	for i := formField(0); i < fieldCount; i++ {
		label := labelStyle.Width(10).Render(labels[i])
		if i == f.focus {
			label = focusedFieldStyle.Width(10).Render(labels[i])
		}

		var field string
		if i == fieldCountry {
			field = f.countryView()
		} else {
			field = f.inputs[i].View()
		}
		rows = append(rows, label+" "+field)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f registerForm) countryView() string {
	opts := make([]string, len(models.Countries))
	for i, c := range models.Countries {
		if i == f.country {
			opts[i] = valueStyle.Render("(•) " + string(c))
		} else {
			opts[i] = mutedStyle.Render("( ) " + string(c))
		}
	}
	return strings.Join(opts, "  ")
}
