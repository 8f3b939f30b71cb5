package handlers

import (
	"context"
	"fmt"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/services"
)

// AddHandler appends externally resolved games to the catalog.
type AddHandler struct {
	state *services.FilterState
}

// NewAddHandler creates a new add handler.
func NewAddHandler(state *services.FilterState) *AddHandler {
	return &AddHandler{state: state}
}

// Handle resolves the title through the external resolver and appends the
// result to the catalog.
func (h *AddHandler) Handle(ctx context.Context, title string) (entities.Game, error) {
	game, err := h.state.AddGame(ctx, title)
	if err != nil {
		return entities.Game{}, fmt.Errorf("adding game: %w", err)
	}
	return game, nil
}
