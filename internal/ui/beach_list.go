package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// beachItem wraps a BeachOption for use in a list
type beachItem struct {
	beach models.BeachOption
}

// FilterValue implements list.Item
func (b beachItem) FilterValue() string {
	return b.beach.Name
}

// Title implements list.DefaultItem
func (b beachItem) Title() string {
	return b.beach.Name
}

// Description implements list.DefaultItem
func (b beachItem) Description() string {
	if b.beach.Country == "" {
		return b.beach.ID
	}
	return fmt.Sprintf("%s • %s", b.beach.ID, b.beach.Country)
}

// createBeachList creates a list.Model from the beach catalog
func createBeachList(beaches []models.BeachOption, width, height int) list.Model {
	items := make([]list.Item, len(beaches))
	for i, beach := range beaches {
		items[i] = beachItem{beach: beach}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Beach"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("beach", "beaches")

	return l
}

// selectBeach moves the cursor to the beach with the given id
func selectBeach(l *list.Model, id string) bool {
	for i, item := range l.Items() {
		if bi, ok := item.(beachItem); ok && bi.beach.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}
