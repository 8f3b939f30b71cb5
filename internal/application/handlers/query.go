// Package handlers wires CLI commands to the domain services.
package handlers

import (
	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/services"
)

// QueryHandler applies filter selections to the engine and collects the
// derived views.
type QueryHandler struct {
	state *services.FilterState
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(state *services.FilterState) *QueryHandler {
	return &QueryHandler{state: state}
}

// Filters holds the filter selections of one query. Zero values impose no
// constraint on their axis.
type Filters struct {
	Studio    string
	FromYear  int
	ToYear    int
	Genres    []string
	Platforms []string
}

// QueryResult contains the derived views under the applied filters.
type QueryResult struct {
	Games     []entities.Game
	Locations []entities.Location
}

// Handle applies the given filters to the engine and returns the filtered
// games together with the derived location set.
func (h *QueryHandler) Handle(f Filters) *QueryResult {
	if f.Studio != "" {
		h.state.SetStudioFilter(f.Studio)
	}
	if f.FromYear != 0 || f.ToYear != 0 {
		from, to := f.FromYear, f.ToYear
		if from == 0 {
			from = to
		}
		if to == 0 {
			to = from
		}
		h.state.SetYearRange(from, to)
	}
	if len(f.Genres) > 0 {
		h.state.SetGenreFilter(f.Genres)
	}
	if len(f.Platforms) > 0 {
		h.state.SetPlatformFilter(f.Platforms)
	}

	return &QueryResult{
		Games:     h.state.FilteredGames(),
		Locations: h.state.FilteredLocations(),
	}
}
