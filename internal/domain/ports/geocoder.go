package ports

import (
	"context"
	"errors"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// ErrNoPlaceFound signals that a studio name produced no usable geocoding
// candidate.
var ErrNoPlaceFound = errors.New("no place found")

// Geocoder defines the interface for resolving a studio name to a location.
type Geocoder interface {
	// Locate geocodes the given developer name. Returns ErrNoPlaceFound
	// when the places API yields no candidate.
	Locate(ctx context.Context, developer string) (entities.Location, error)
}
