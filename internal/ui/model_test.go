package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/surf-terminal/internal/surfapi"
)

// key builds the KeyMsg bubbletea would deliver for a named key or a rune
func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, k string) (Model, tea.Cmd) {
	updated, cmd := m.Update(key(k))
	return updated.(Model), cmd
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, string(r))
	}
	return m
}

// loadedModel returns a sized model that has already received the catalog
func loadedModel(t *testing.T, client *mockClient, opts ...Option) (Model, tea.Cmd) {
	t.Helper()
	if client.beaches == nil {
		client.beaches = testBeaches()
	}
	m := NewModel(client, opts...)
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return send(m, fetchBeaches(client, time.Second)())
}

func TestNewModel(t *testing.T) {
	m := NewModel(&mockClient{})

	if m.state != StateLoading {
		t.Errorf("NewModel() state = %v, want StateLoading", m.state)
	}
	if !m.busy {
		t.Error("NewModel() should be busy until the catalog arrives")
	}
	if m.timeout != 30*time.Second {
		t.Errorf("NewModel() timeout = %v, want 30s", m.timeout)
	}
	if m.Init() == nil {
		t.Error("Init() should start loading the catalog")
	}
}

func TestNewModel_Options(t *testing.T) {
	m := NewModel(&mockClient{}, WithRequestTimeout(0), WithInitialBeach("razo"))

	if m.timeout != 0 {
		t.Errorf("timeout = %v, want 0", m.timeout)
	}
	if m.initialBeach != "razo" {
		t.Errorf("initialBeach = %q, want razo", m.initialBeach)
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(&mockClient{})

	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_View_BeforeSize(t *testing.T) {
	if got := NewModel(&mockClient{}).View(); got != "Loading..." {
		t.Errorf("View() before sizing = %q, want Loading...", got)
	}
}

func TestModel_BeachesLoaded(t *testing.T) {
	client := &mockClient{}
	m, _ := loadedModel(t, client)

	if m.state != StateBrowse {
		t.Errorf("state = %v, want StateBrowse", m.state)
	}
	if m.busy {
		t.Error("model should not be busy after the catalog loads")
	}
	if got := len(m.beachList.Items()); got != 3 {
		t.Errorf("list has %d items, want 3", got)
	}
	if !strings.Contains(m.View(), "Playa de Razo") {
		t.Error("browse view should list the beaches")
	}
}

func TestModel_BeachesLoadFailed(t *testing.T) {
	client := &mockClient{listErr: errors.New("connection refused")}
	m := NewModel(client)
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(m, fetchBeaches(client, time.Second)())

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("error view should include the cause")
	}

	// Any key retries when nothing has been loaded yet
	m, cmd := press(m, "x")
	if m.state != StateLoading {
		t.Errorf("state = %v, want StateLoading", m.state)
	}
	if cmd == nil {
		t.Error("expected a reload command")
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(&mockClient{})

	_, cmd := press(m, "ctrl+c")
	if cmd == nil {
		t.Fatal("Expected Ctrl+C to return quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected Ctrl+C to quit")
	}
}

func TestModel_Lookup(t *testing.T) {
	client := &mockClient{conditions: testConditions()}
	m, _ := loadedModel(t, client)

	m, _ = press(m, "down")
	m, cmd := press(m, "enter")
	if !m.busy {
		t.Error("model should be busy while the lookup is in flight")
	}
	if cmd == nil {
		t.Fatal("enter should start a lookup")
	}

	m, fade := send(m, cmd())
	if len(client.lookups) != 1 || client.lookups[0] != "pantin" {
		t.Fatalf("lookups = %v, want [pantin]", client.lookups)
	}
	if m.conditions == nil || m.conditions.Beach != "Pantín" {
		t.Fatalf("conditions not stored: %+v", m.conditions)
	}
	if m.cardOpacity != 0 {
		t.Errorf("card should start transparent, opacity = %v", m.cardOpacity)
	}
	if fade == nil {
		t.Error("expected the fade-in to start")
	}

	for i := 0; i < 10 && m.cardOpacity < 1; i++ {
		m, _ = send(m, fadeTickMsg{})
	}
	if m.cardOpacity != 1 {
		t.Errorf("card opacity = %v after fade, want 1", m.cardOpacity)
	}

	view := m.View()
	for _, want := range []string{"Pantín", "1.5 m", "9 s", "Noroeste (315º)", "12.4 km/h (Sur)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_Lookup_ServerDetail(t *testing.T) {
	client := &mockClient{lookupErr: &surfapi.APIError{StatusCode: 404, Detail: "Playa no encontrada"}}
	m, _ := loadedModel(t, client)

	m, cmd := press(m, "enter")
	m, _ = send(m, cmd())

	if m.state != StateAlert {
		t.Fatalf("state = %v, want StateAlert", m.state)
	}
	if m.alert.message != "Error: Playa no encontrada" {
		t.Errorf("alert = %q", m.alert.message)
	}

	m, _ = press(m, "enter")
	if m.state != StateBrowse {
		t.Errorf("state = %v after dismissing, want StateBrowse", m.state)
	}
}

func TestModel_Lookup_NetworkError(t *testing.T) {
	client := &mockClient{lookupErr: errors.New("dial tcp: connection refused")}
	m, _ := loadedModel(t, client)

	m, cmd := press(m, "enter")
	m, _ = send(m, cmd())

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}

	m, _ = press(m, "x")
	if m.state != StateBrowse {
		t.Errorf("state = %v, want StateBrowse once beaches are loaded", m.state)
	}
}

func TestModel_BusyIgnoresActions(t *testing.T) {
	client := &mockClient{conditions: testConditions()}
	m, _ := loadedModel(t, client)

	m, _ = press(m, "enter")
	m, cmd := press(m, "d")

	if m.state != StateBrowse {
		t.Errorf("state = %v, want StateBrowse while busy", m.state)
	}
	if cmd != nil {
		t.Error("no command expected while a request is in flight")
	}
}

func TestModel_InitialBeach(t *testing.T) {
	client := &mockClient{conditions: testConditions()}
	m, cmd := loadedModel(t, client, WithInitialBeach("razo"))

	if cmd == nil {
		t.Fatal("expected the initial beach to be looked up")
	}
	if m.beachList.Index() != 2 {
		t.Errorf("selected index = %d, want 2", m.beachList.Index())
	}

	cmd()
	if len(client.lookups) != 1 || client.lookups[0] != "razo" {
		t.Errorf("lookups = %v, want [razo]", client.lookups)
	}
}

func TestModel_InitialBeachNotFound(t *testing.T) {
	client := &mockClient{}
	m, cmd := loadedModel(t, client, WithInitialBeach("atlantis"))

	if cmd != nil {
		t.Error("no lookup expected for an unknown beach")
	}
	if m.state != StateAlert {
		t.Errorf("state = %v, want StateAlert", m.state)
	}
}

func TestModel_Reload(t *testing.T) {
	client := &mockClient{conditions: testConditions()}
	m, _ := loadedModel(t, client)
	m, cmd := press(m, "enter")
	m, _ = send(m, cmd())

	m, cmd = press(m, "r")
	if m.state != StateLoading {
		t.Errorf("state = %v, want StateLoading", m.state)
	}
	if m.conditions != nil {
		t.Error("reload should clear the result card")
	}
	if cmd == nil {
		t.Fatal("expected a catalog fetch")
	}

	m, _ = send(m, cmd())
	if client.listCalls != 2 {
		t.Errorf("listCalls = %d, want 2", client.listCalls)
	}
	if m.state != StateBrowse {
		t.Errorf("state = %v, want StateBrowse", m.state)
	}
}
