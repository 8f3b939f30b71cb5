package views

import (
	"math"

	"github.com/google/uuid"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/services"
)

// Mode selects how the heatmap renders the location set.
type Mode int

const (
	// ModeHeat renders an aggregated density layer.
	ModeHeat Mode = iota
	// ModeMarkers renders one discrete marker per location.
	ModeMarkers
)

// Heat weight model: every location starts at baseWeight and gains
// neighborGain per location within neighborRadius meters, capped at
// maxWeight.
const (
	baseWeight     = 2.0
	neighborGain   = 0.5
	maxWeight      = 10.0
	neighborRadius = 1000.0
)

// densitySteps are the gradient stops of the heat layer.
var densitySteps = []float64{0, 0.1, 0.2, 0.4, 0.6, 0.8, 1.0}

// Pin is a single highlighted studio location.
type Pin struct {
	Latitude  float64
	Longitude float64
}

// Heatmap consumes the engine's filtered locations and computes the display
// model of the geographic view: heat weights, density thresholds, marker
// colors and the single-location pin override.
type Heatmap struct {
	state *services.FilterState
	sub   uuid.UUID

	locations []entities.Location
	mode      Mode
	pin       *Pin
}

// NewHeatmap creates a heatmap adapter subscribed to the engine.
func NewHeatmap(state *services.FilterState) *Heatmap {
	h := &Heatmap{state: state}
	h.refresh(state)
	h.sub = state.Subscribe(h.refresh)
	return h
}

// Close detaches the adapter from the engine.
func (h *Heatmap) Close() {
	h.state.Unsubscribe(h.sub)
}

func (h *Heatmap) refresh(s *services.FilterState) {
	h.locations = s.FilteredLocations()
}

// Mode returns the current display mode.
func (h *Heatmap) Mode() Mode {
	return h.mode
}

// ToggleMode switches between the aggregated density layer and discrete
// markers, returning the new mode.
func (h *Heatmap) ToggleMode() Mode {
	if h.mode == ModeHeat {
		h.mode = ModeMarkers
	} else {
		h.mode = ModeHeat
	}
	return h.mode
}

// ShowPin enters pin mode: a single highlighted location overrides the
// normal filtered display until ClearPin.
func (h *Heatmap) ShowPin(lat, lng float64) {
	h.pin = &Pin{Latitude: lat, Longitude: lng}
}

// ClearPin leaves pin mode and restores the filtered display.
func (h *Heatmap) ClearPin() {
	h.pin = nil
}

// Pin returns the active pin, if any.
func (h *Heatmap) Pin() (Pin, bool) {
	if h.pin == nil {
		return Pin{}, false
	}
	return *h.pin, true
}

// Display returns the locations the view should render. An active pin
// overrides the filtered set.
func (h *Heatmap) Display() []entities.Location {
	if h.pin != nil {
		return nil
	}
	return h.locations
}

// Weight computes the heat intensity of a location from the number of
// studios clustered around it. The location counts itself as a neighbor.
func (h *Heatmap) Weight(loc entities.Location) float64 {
	neighbors := h.neighborCount(loc, neighborRadius)
	weight := baseWeight + float64(neighbors)*neighborGain
	return math.Min(weight, maxWeight)
}

// DensityThresholds maps the gradient stops onto absolute location counts
// for the legend.
func (h *Heatmap) DensityThresholds() []int {
	out := make([]int, len(densitySteps))
	for i, step := range densitySteps {
		out[i] = int(math.Ceil(step * float64(len(h.locations))))
	}
	return out
}

// MarkerColor classifies a location for discrete-marker mode by how many
// studios sit within the given radius in meters.
func (h *Heatmap) MarkerColor(loc entities.Location, radius float64) string {
	neighbors := h.neighborCount(loc, radius)
	switch {
	case neighbors > 20:
		return "red"
	case neighbors > 10:
		return "orange"
	case neighbors > 5:
		return "yellow"
	default:
		return "green"
	}
}

func (h *Heatmap) neighborCount(loc entities.Location, radius float64) int {
	count := 0
	for _, other := range h.locations {
		if haversineMeters(loc, other) <= radius {
			count++
		}
	}
	return count
}

// haversineMeters returns the great-circle distance between two locations.
func haversineMeters(a, b entities.Location) float64 {
	const earthRadius = 6371e3

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLng := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
