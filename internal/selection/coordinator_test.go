package selection

import (
	"testing"

	"github.com/event-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCoordinator(t *testing.T) {
	var c Coordinator

	_, ok := c.Selected()
	assert.False(t, ok, "zero value is NoSelection")

	c.Select("o1")
	id, ok := c.Selected()
	assert.True(t, ok)
	assert.Equal(t, domain.ID("o1"), id)
	assert.True(t, c.Is("o1"))
	assert.False(t, c.Is("o2"))

	c.Select("")
	_, ok = c.Selected()
	assert.False(t, ok, "empty id clears")

	c.Select("o2")
	c.Clear()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestCoordinator_Reconcile(t *testing.T) {
	present := map[domain.ID]bool{"o1": true}
	exists := func(id domain.ID) bool { return present[id] }

	var c Coordinator
	c.Select("o1")
	assert.False(t, c.Reconcile(exists))
	assert.True(t, c.Is("o1"))

	c.Select("gone")
	assert.True(t, c.Reconcile(exists))
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestHazardCoordinator(t *testing.T) {
	t.Run("default shows all", func(t *testing.T) {
		h := NewHazardCoordinator()
		assert.True(t, h.ShowingAll())
		_, ok := h.Event()
		assert.False(t, ok)
	})

	t.Run("hazard selection keeps event selection", func(t *testing.T) {
		h := NewHazardCoordinator()
		h.SelectEvent("1")
		h.SelectHazard("10")

		ev, ok := h.Event()
		assert.True(t, ok)
		assert.Equal(t, domain.ID("1"), ev)
		hz, ok := h.Hazard()
		assert.True(t, ok)
		assert.Equal(t, domain.ID("10"), hz)
	})

	t.Run("new event clears hazard and show-all", func(t *testing.T) {
		h := NewHazardCoordinator()
		h.SelectHazard("10")
		h.SelectEvent("2")

		_, ok := h.Hazard()
		assert.False(t, ok)
		assert.False(t, h.ShowingAll())
		ev, _ := h.Event()
		assert.Equal(t, domain.ID("2"), ev)
	})

	t.Run("show all clears both selections", func(t *testing.T) {
		h := NewHazardCoordinator()
		h.SelectEvent("1")
		h.SelectHazard("10")
		h.ShowAll()

		_, evOK := h.Event()
		_, hzOK := h.Hazard()
		assert.False(t, evOK)
		assert.False(t, hzOK)
		assert.True(t, h.ShowingAll())
	})

	t.Run("clear restores the default", func(t *testing.T) {
		h := NewHazardCoordinator()
		h.SelectEvent("1")
		h.SelectHazard("10")
		h.Clear()
		assert.Equal(t, NewHazardCoordinator(), h)
	})

	t.Run("reconcile drops a missing event with its hazard", func(t *testing.T) {
		h := NewHazardCoordinator()
		h.SelectEvent("1")
		h.SelectHazard("10")
		h.Reconcile(func(domain.ID) bool { return false }, func(domain.ID) bool { return true })

		_, evOK := h.Event()
		_, hzOK := h.Hazard()
		assert.False(t, evOK)
		assert.False(t, hzOK)
	})
}

func TestCameraFor(t *testing.T) {
	target := domain.LatLng{Lat: -41.29, Lng: 174.76}
	assert.Equal(t, CameraMove{Target: target, Zoom: 13, Animate: true}, CameraFor(target, 0))
	assert.Equal(t, 10, CameraFor(target, 10).Zoom)
}
