package handlers

import (
	"fmt"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/services"
)

// InfoHandler looks up a single game and focuses the views on it: the year
// filter narrows to the release year and the studio's location, if known,
// becomes the heatmap pin.
type InfoHandler struct {
	state *services.FilterState
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(state *services.FilterState) *InfoHandler {
	return &InfoHandler{state: state}
}

// InfoResult contains the looked-up game and its studio location, when the
// location catalog knows the studio.
type InfoResult struct {
	Game     entities.Game
	Location *entities.Location
}

// Handle looks up the title in the full catalog. For dated games the year
// filter narrows to the release year before the studio location is derived,
// matching what the views display after a lookup.
func (h *InfoHandler) Handle(title string) (*InfoResult, error) {
	game, err := h.state.GameByTitle(title)
	if err != nil {
		return nil, fmt.Errorf("looking up game: %w", err)
	}

	if game.HasReleaseDate() {
		year := game.Year()
		h.state.SetYearRange(year, year)
	}

	result := &InfoResult{Game: game}
	for _, loc := range h.state.FilteredLocations() {
		if loc.Developer == game.Developer {
			loc := loc
			result.Location = &loc
			break
		}
	}

	return result, nil
}
