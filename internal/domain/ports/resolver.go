// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// ErrGameNotFound signals that a title could not be resolved or found.
// Resolution failures of every kind (search miss, detail miss, transport
// error, malformed payload) surface as this single error so callers can
// present one uniform message.
var ErrGameNotFound = errors.New("game not found")

// ErrDuplicateGame signals that a resolved title already exists in the
// catalog under the same name.
var ErrDuplicateGame = errors.New("game already in catalog")

// GameResolver defines the interface for looking up a game by free-text
// title against an external metadata API.
type GameResolver interface {
	// Resolve performs the lookup and maps the best match into the
	// catalog's record shape. Returns ErrGameNotFound on any failure.
	Resolve(ctx context.Context, title string) (entities.Game, error)
}
