// Package views contains the view adapters that sit between the filter
// engine and the rendering layer. Adapters subscribe to the engine,
// recompute their display model from the derived views on every
// notification, and route user intents (year selection, pin requests) back
// into the engine. Rendering itself stays outside this package.
package views

import (
	"sort"

	"github.com/google/uuid"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/services"
)

// Default paging window of the timeline display.
const (
	DefaultWindowStart = 2006
	DefaultWindowEnd   = 2025
)

// Timeline aggregates the filtered game set into per-year release counts
// over a fixed-width paging window. Paging shifts the window without
// touching the active filter; selecting a year routes back into the engine
// as a year-range mutation.
type Timeline struct {
	state *services.FilterState
	sub   uuid.UUID

	windowStart int
	windowEnd   int
	games       []entities.Game
}

// NewTimeline creates a timeline adapter subscribed to the engine.
func NewTimeline(state *services.FilterState) *Timeline {
	t := &Timeline{
		state:       state,
		windowStart: DefaultWindowStart,
		windowEnd:   DefaultWindowEnd,
	}
	t.refresh(state)
	t.sub = state.Subscribe(t.refresh)
	return t
}

// Close detaches the adapter from the engine.
func (t *Timeline) Close() {
	t.state.Unsubscribe(t.sub)
}

func (t *Timeline) refresh(s *services.FilterState) {
	t.games = s.FilteredGames()
}

// Window returns the inclusive year range currently displayed.
func (t *Timeline) Window() (start, end int) {
	return t.windowStart, t.windowEnd
}

// NextYear shifts the display window one year forward.
func (t *Timeline) NextYear() {
	t.windowStart++
	t.windowEnd++
}

// PreviousYear shifts the display window one year back.
func (t *Timeline) PreviousYear() {
	t.windowStart--
	t.windowEnd--
}

// SelectYear is the bar-click intent: it narrows the engine's year filter to
// the selected year.
func (t *Timeline) SelectYear(year int) {
	t.state.SetYearRange(year, year)
}

// ReleaseCounts returns the number of filtered releases per year, across all
// years present in the filtered set.
func (t *Timeline) ReleaseCounts() map[int]int {
	counts := make(map[int]int)
	for _, g := range t.games {
		counts[g.Year()]++
	}
	return counts
}

// VisibleYears returns, in ascending order, the years inside the display
// window that have at least one filtered release.
func (t *Timeline) VisibleYears() []int {
	counts := t.ReleaseCounts()
	var years []int
	for year := range counts {
		if year >= t.windowStart && year <= t.windowEnd {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}

// GamesFor returns the filtered games released in the given year, sorted by
// name for display.
func (t *Timeline) GamesFor(year int) []entities.Game {
	var out []entities.Game
	for _, g := range t.games {
		if g.Year() == year {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
