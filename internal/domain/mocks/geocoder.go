package mocks

import (
	"context"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/ports"
)

// Geocoder is a mock implementation of ports.Geocoder.
type Geocoder struct {
	// Locations maps developer names to the location Locate returns.
	// Missing developers yield ports.ErrNoPlaceFound.
	Locations map[string]entities.Location
	// Err, when set, is returned for every lookup.
	Err error
}

// Locate returns the configured location for the developer or an error.
func (m *Geocoder) Locate(ctx context.Context, developer string) (entities.Location, error) {
	if m.Err != nil {
		return entities.Location{}, m.Err
	}
	loc, ok := m.Locations[developer]
	if !ok {
		return entities.Location{}, ports.ErrNoPlaceFound
	}
	return loc, nil
}
