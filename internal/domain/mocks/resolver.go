// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// GameResolver is a mock implementation of ports.GameResolver.
type GameResolver struct {
	// Resolve return values
	Game entities.Game
	Err  error

	// Calls records the titles Resolve was invoked with.
	Calls []string
}

// Resolve returns the configured game or error.
func (m *GameResolver) Resolve(ctx context.Context, title string) (entities.Game, error) {
	m.Calls = append(m.Calls, title)
	if m.Err != nil {
		return entities.Game{}, m.Err
	}
	return m.Game, nil
}
