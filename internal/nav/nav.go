// Package nav tracks which panel is active.
package nav

import (
	"log/slog"

	"github.com/marcus/daypick/internal/models"
)

// Navigator holds an ordered set of tabs and the active one
type Navigator struct {
	tabs   []models.Tab
	active models.Tab
}

// New creates a navigator over tabs with nothing selected yet.
// Call Select to pick the initial tab.
func New(tabs ...models.Tab) *Navigator {
	if len(tabs) == 0 {
		tabs = models.Tabs
	}
	return &Navigator{tabs: append([]models.Tab(nil), tabs...)}
}

// Tabs returns the tabs in display order
func (n *Navigator) Tabs() []models.Tab {
	return append([]models.Tab(nil), n.tabs...)
}

// Active returns the active tab, or "" before the first Select
func (n *Navigator) Active() models.Tab {
	return n.active
}

// Index returns the position of t, or -1
func (n *Navigator) Index(t models.Tab) int {
	for i, tab := range n.tabs {
		if tab == t {
			return i
		}
	}
	return -1
}

// Select activates t and returns the tab that ended up active.
// An empty t selects the first tab. An unknown t keeps the current tab, or
// falls back to the first tab when none is active yet, so stray requests
// never leave the view without a panel.
func (n *Navigator) Select(t models.Tab) models.Tab {
	selected := t
	if selected == "" {
		selected = n.tabs[0]
	}
	if n.Index(selected) == -1 {
		if n.active == "" {
			selected = n.tabs[0]
		} else {
			selected = n.active
		}
	}

	if selected != n.active {
		slog.Debug("nav: switch", "from", n.active, "to", selected)
	}
	n.active = selected
	return selected
}

// Next activates the tab after the active one, wrapping around
func (n *Navigator) Next() models.Tab {
	return n.step(1)
}

// Prev activates the tab before the active one, wrapping around
func (n *Navigator) Prev() models.Tab {
	return n.step(len(n.tabs) - 1)
}

func (n *Navigator) step(delta int) models.Tab {
	i := n.Index(n.active)
	if i == -1 {
		return n.Select("")
	}
	return n.Select(n.tabs[(i+delta)%len(n.tabs)])
}
