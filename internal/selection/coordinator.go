// Package selection tracks which entity the user has focused and derives the
// camera move that follows a selection.
package selection

import "github.com/event-dashboard/internal/domain"

// Granularity - level a selection applies to
type Granularity string

const (
	GranularityRecord Granularity = "record"
	GranularityEvent  Granularity = "event"
	GranularityHazard Granularity = "hazard"
)

// Coordinator holds NoSelection or Selected(id). The zero value is NoSelection.
type Coordinator struct {
	id  domain.ID
	set bool
}

// Select focuses id. An empty id is the same as Clear.
func (c *Coordinator) Select(id domain.ID) {
	if id == "" {
		c.Clear()
		return
	}
	c.id, c.set = id, true
}

// Clear returns to NoSelection.
func (c *Coordinator) Clear() {
	c.id, c.set = "", false
}

// Selected returns the focused id, if any.
func (c Coordinator) Selected() (domain.ID, bool) {
	return c.id, c.set
}

// Is reports whether id is the current selection.
func (c Coordinator) Is(id domain.ID) bool {
	return c.set && c.id == id
}

// Reconcile clears a selection whose id no longer exists and reports whether
// it did so.
func (c *Coordinator) Reconcile(exists func(domain.ID) bool) bool {
	if !c.set || exists(c.id) {
		return false
	}
	c.Clear()
	return true
}

// HazardCoordinator - weather selection with event and hazard granularity
// plus the "show all hazards" switch. Use NewHazardCoordinator; a fresh
// weather view plots every hazard.
type HazardCoordinator struct {
	event   Coordinator
	hazard  Coordinator
	showAll bool
}

// NewHazardCoordinator returns the default state: nothing focused, show-all on.
func NewHazardCoordinator() HazardCoordinator {
	return HazardCoordinator{showAll: true}
}

// SelectEvent focuses an event and drops any hazard focus and show-all.
func (h *HazardCoordinator) SelectEvent(id domain.ID) {
	h.event.Select(id)
	h.hazard.Clear()
	h.showAll = false
}

// SelectHazard focuses a hazard. The event selection is left untouched.
func (h *HazardCoordinator) SelectHazard(id domain.ID) {
	h.hazard.Select(id)
}

// ShowAll plots every hazard of the filtered events and clears both selections.
func (h *HazardCoordinator) ShowAll() {
	h.event.Clear()
	h.hazard.Clear()
	h.showAll = true
}

// ClearHazard drops only the hazard focus.
func (h *HazardCoordinator) ClearHazard() {
	h.hazard.Clear()
}

// Clear returns to the default state.
func (h *HazardCoordinator) Clear() {
	*h = NewHazardCoordinator()
}

func (h HazardCoordinator) Event() (domain.ID, bool)  { return h.event.Selected() }
func (h HazardCoordinator) Hazard() (domain.ID, bool) { return h.hazard.Selected() }
func (h HazardCoordinator) ShowingAll() bool          { return h.showAll }

// Reconcile drops selections that no longer resolve. A missing event takes
// its hazard focus with it.
func (h *HazardCoordinator) Reconcile(eventExists, hazardExists func(domain.ID) bool) {
	if h.event.Reconcile(eventExists) {
		h.hazard.Clear()
	}
	h.hazard.Reconcile(hazardExists)
}
