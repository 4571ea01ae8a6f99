package selection

import "github.com/event-dashboard/internal/domain"

// DefaultZoom is the zoom level the map flies to on selection.
const DefaultZoom = 13

// CameraMove - animated re-centre requested by a selection
type CameraMove struct {
	Target  domain.LatLng `json:"target"`
	Zoom    int           `json:"zoom"`
	Animate bool          `json:"animate"`
}

// CameraFor builds the move to target. Non-positive zoom falls back to DefaultZoom.
func CameraFor(target domain.LatLng, zoom int) CameraMove {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return CameraMove{Target: target, Zoom: zoom, Animate: true}
}
