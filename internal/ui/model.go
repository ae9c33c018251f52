package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/surf-terminal/internal/logger"
	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/surfapi"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading       AppState = iota // Fetching the beach catalog
	StateBrowse                        // Beach selector and conditions card
	StateRegister                      // New beach form
	StateConfirmDelete                 // Waiting for the user to confirm a deletion
	StateAlert                         // Blocking message, dismissed by any key
	StateError                         // Network or decode failure
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	client       surfapi.Client
	log          *logger.Logger
	timeout      time.Duration
	initialBeach string

	// Selector
	beaches   []models.BeachOption
	beachList list.Model

	// Result card
	conditions  *models.Conditions
	fetchedAt   time.Time
	cardOpacity float64

	// Registration
	form registerForm

	// Dialogs
	alert         alertDialog
	pendingDelete string

	// A request is in flight; action keys are ignored until it reports back
	busy    bool
	spinner spinner.Model
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger used for user actions and failures
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// WithRequestTimeout bounds every request; zero disables the deadline
func WithRequestTimeout(d time.Duration) Option {
	return func(m *Model) {
		m.timeout = d
	}
}

// WithInitialBeach looks up the given beach as soon as the catalog loads
func WithInitialBeach(id string) Option {
	return func(m *Model) {
		m.initialBeach = id
	}
}

// NewModel creates a new application model
func NewModel(client surfapi.Client, opts ...Option) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		state:   StateLoading,
		client:  client,
		log:     logger.Nop(),
		timeout: 30 * time.Second,
		form:    newRegisterForm(),
		busy:    true,
		spinner: s,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.beachList = createBeachList(nil, 30, 10)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchBeaches(m.client, m.timeout))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.beachList.SetSize(m.listSize())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fadeTickMsg:
		if m.conditions == nil || m.cardOpacity >= 1 {
			return m, nil
		}
		m.cardOpacity += fadeStep
		if m.cardOpacity >= 1 {
			m.cardOpacity = 1
			return m, nil
		}
		return m, fadeTick()

	case beachesFetchedMsg:
		return m.handleBeachesFetched(msg)

	case conditionsFetchedMsg:
		return m.handleConditionsFetched(msg)

	case beachSavedMsg:
		return m.handleBeachSaved(msg)

	case beachDeletedMsg:
		return m.handleBeachDeleted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.state {
	case StateBrowse:
		m.beachList, cmd = m.beachList.Update(msg)
	case StateRegister:
		// cursor blink
		m.form, cmd = m.form.forward(msg)
	}
	return m, cmd
}

func (m Model) handleBeachesFetched(msg beachesFetchedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.log.Error(msg.err, map[string]any{"op": "list_beaches"})
		m.err = fmt.Errorf("loading beaches failed: %w", msg.err)
		m.state = StateError
		return m, nil
	}

	m.log.Info("beach list loaded", map[string]any{"count": len(msg.beaches)})
	m.beaches = msg.beaches
	w, h := m.listSize()
	m.beachList = createBeachList(msg.beaches, w, h)
	m.state = StateBrowse

	if m.initialBeach != "" {
		id := m.initialBeach
		m.initialBeach = ""
		if !selectBeach(&m.beachList, id) {
			return m.showAlert(fmt.Sprintf("Beach %q not found", id), false, StateBrowse), nil
		}
		m.busy = true
		return m, lookupConditions(m.client, m.timeout, id)
	}

	return m, nil
}

func (m Model) handleConditionsFetched(msg conditionsFetchedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.log.Error(msg.err, map[string]any{"op": "get_conditions", "beach_id": msg.beachID})
		var apiErr *surfapi.APIError
		if errors.As(msg.err, &apiErr) {
			return m.showAlert("Error: "+apiErr.Detail, false, StateBrowse), nil
		}
		m.err = fmt.Errorf("fetching conditions failed: %w", msg.err)
		m.state = StateError
		return m, nil
	}

	m.log.Info("conditions fetched", map[string]any{"beach_id": msg.beachID})
	m.conditions = msg.conditions
	m.fetchedAt = time.Now()
	m.cardOpacity = 0
	return m, fadeTick()
}

func (m Model) handleBeachSaved(msg beachSavedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.log.Error(msg.err, map[string]any{"op": "add_beach", "beach_id": msg.beach.ID})
		var apiErr *surfapi.APIError
		if errors.As(msg.err, &apiErr) {
			return m.showAlert("Error saving: "+apiErr.Detail, false, StateRegister), nil
		}
		m.err = fmt.Errorf("saving beach failed: %w", msg.err)
		m.state = StateError
		return m, nil
	}

	m.log.Info("beach saved", map[string]any{"beach_id": msg.beach.ID})
	return m.showAlert("Beach saved successfully!", true, StateBrowse), nil
}

func (m Model) handleBeachDeleted(msg beachDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.log.Error(msg.err, map[string]any{"op": "delete_beach", "beach_id": msg.beachID})
		var apiErr *surfapi.APIError
		if errors.As(msg.err, &apiErr) {
			return m.showAlert("Error: "+apiErr.Detail, false, StateBrowse), nil
		}
		m.err = fmt.Errorf("deleting beach failed: %w", msg.err)
		m.state = StateError
		return m, nil
	}

	m.log.Info("beach deleted", map[string]any{"beach_id": msg.beachID})
	return m.showAlert("Beach deleted successfully.", true, StateBrowse), nil
}

// handleKey routes keyboard input by state
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Nothing but quitting while a request is in flight
	if m.busy {
		if msg.String() == "q" && m.state != StateRegister {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.state {
	case StateBrowse:
		return m.handleBrowseKey(msg)
	case StateRegister:
		return m.handleRegisterKey(msg)
	case StateConfirmDelete:
		return m.handleConfirmKey(msg)
	case StateAlert:
		return m.dismissAlert()
	case StateError:
		// Any key returns to the selector, or retries when nothing is loaded
		m.err = nil
		if m.beaches == nil {
			return m.reload()
		}
		m.state = StateBrowse
		return m, nil
	}

	if msg.String() == "q" {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		id, ok := m.selectedBeachID()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, lookupConditions(m.client, m.timeout, id)

	case "n":
		m.state = StateRegister
		cmd := m.form.setFocus(m.form.focus)
		return m, cmd

	case "d":
		id, ok := m.selectedBeachID()
		if !ok {
			return m, nil
		}
		m.pendingDelete = id
		m.state = StateConfirmDelete
		return m, nil

	case "r":
		return m.reload()
	}

	var cmd tea.Cmd
	m.beachList, cmd = m.beachList.Update(msg)
	return m, cmd
}

func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateBrowse
		return m, nil

	case tea.KeyEnter:
		beach, err := m.form.values().Beach()
		if err != nil {
			m.log.Debug("registration rejected", map[string]any{"reason": err.Error()})
			return m.showAlert(validationMessage(err), false, StateRegister), nil
		}
		m.busy = true
		return m, saveBeach(m.client, m.timeout, beach)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.pendingDelete = ""
	m.state = StateBrowse

	if msg.String() != "y" && msg.String() != "Y" {
		return m, nil
	}

	m.busy = true
	return m, deleteBeach(m.client, m.timeout, id)
}

// reload refetches the catalog and resets the card and form
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.conditions = nil
	m.cardOpacity = 0
	m.fetchedAt = time.Time{}
	m.form = newRegisterForm()
	m.state = StateLoading
	m.busy = true
	return m, fetchBeaches(m.client, m.timeout)
}

func (m Model) selectedBeachID() (string, bool) {
	item, ok := m.beachList.SelectedItem().(beachItem)
	if !ok {
		return "", false
	}
	return item.beach.ID, true
}

func (m Model) listSize() (int, int) {
	w := m.width/2 - 2
	if w < 30 {
		w = 30
	}
	h := m.height - 8
	if h < 10 {
		h = 10
	}
	return w, h
}

// validationMessage maps a form validation error to alert text
func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrCountryRequired):
		return "Please select a country (Brasil or España)"
	case errors.Is(err, models.ErrFieldsRequired):
		return "All fields are required"
	default:
		return err.Error()
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateBrowse:
		return m.viewBrowse()
	case StateRegister:
		return m.viewRegister()
	case StateConfirmDelete:
		return m.viewConfirm()
	case StateAlert:
		return m.viewAlert()
	case StateError:
		return m.viewError()
	}

	return ""
}

func (m Model) header() string {
	title := titleStyle.Render("🏄 Surf Terminal")
	subtitle := mutedStyle.Render("Current surf & wind conditions")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// viewLoading renders the catalog loading screen
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Loading beaches...")),
	)
}

// viewBrowse renders the selector next to the result card
func (m Model) viewBrowse() string {
	w, _ := m.listSize()
	cardWidth := m.width - w - 4
	if cardWidth < 36 {
		cardWidth = 36
	}

	var selector string
	if len(m.beaches) == 0 {
		selector = mutedStyle.Width(w).Render("No beaches registered yet. Press N to add one.")
	} else {
		selector = m.beachList.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, selector, m.renderCard(cardWidth))

	status := ""
	if m.busy {
		status = fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Fetching conditions..."))
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Conditions • N: New beach • D: Delete • R: Reload • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, status, help)
}

// viewRegister renders the new beach form
func (m Model) viewRegister() string {
	box := paneStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Register a new beach 🏖️"),
		"",
		m.form.view(),
	))

	status := ""
	if m.busy {
		status = fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Saving beach..."))
	}

	help := helpStyle.Render("Tab/↑/↓: Move • ←/→/Space: Country • Enter: Save • Esc: Back")

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), box, status, help)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to continue • Ctrl+C: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}
