package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/ports"
)

// UpdateFunc is invoked after every successful mutation. The callback
// receives the engine so it can pull fresh derived views. Callbacks must not
// mutate the engine; mutations are serialized and a re-entrant mutation from
// a callback would deadlock.
type UpdateFunc func(*FilterState)

type subscriber struct {
	id uuid.UUID
	fn UpdateFunc
}

// FilterState owns the game and location catalogs and the active filter
// predicate. Filter axes combine by AND; within the multi-valued axes
// (genre, platform) a record matches if it shares at least one tag with the
// filter set. Derived views are recomputed on every read, never cached.
//
// Mutations are serialized: predicate update, derived recompute and
// subscriber fan-out happen as one uninterrupted step, so a subscriber
// observing a notification always sees fully consistent post-mutation state.
type FilterState struct {
	resolver ports.GameResolver

	// mutMu serializes mutations end to end, including fan-out.
	mutMu sync.Mutex
	// mu guards the catalogs, the predicate and the subscriber list.
	// Readers (including subscriber callbacks during fan-out) take it
	// read-only.
	mu sync.RWMutex

	games     []entities.Game
	locations []entities.Location

	studio             string
	startYear, endYear int
	yearSet            bool
	genres             map[string]struct{}
	platforms          map[string]struct{}

	subs []subscriber
}

// NewFilterState creates an engine over the loaded catalogs. The resolver
// backs AddGame and may be nil when runtime additions are not needed.
func NewFilterState(games []entities.Game, locations []entities.Location, resolver ports.GameResolver) *FilterState {
	return &FilterState{
		resolver:  resolver,
		games:     append([]entities.Game(nil), games...),
		locations: append([]entities.Location(nil), locations...),
	}
}

// Subscribe registers a callback invoked synchronously, in registration
// order, on every successful mutation. The returned ID detaches the
// callback via Unsubscribe.
func (s *FilterState) Subscribe(fn UpdateFunc) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return id
}

// Unsubscribe removes a previously registered callback. Unknown IDs are
// ignored.
func (s *FilterState) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// SetStudioFilter constrains filtered views to games by the named studio.
// An empty name imposes no constraint.
func (s *FilterState) SetStudioFilter(name string) {
	s.mutate(func() { s.studio = name })
}

// ClearStudioFilter removes the studio constraint.
func (s *FilterState) ClearStudioFilter() {
	s.mutate(func() { s.studio = "" })
}

// SetYearRange constrains filtered views to releases within the inclusive
// [start, end] range. An inverted range is valid input and yields an empty
// result set.
func (s *FilterState) SetYearRange(start, end int) {
	s.mutate(func() {
		s.startYear, s.endYear = start, end
		s.yearSet = true
	})
}

// ClearYearRange removes the year constraint.
func (s *FilterState) ClearYearRange() {
	s.mutate(func() { s.yearSet = false })
}

// SetGenreFilter replaces the genre constraint wholesale. A game matches
// when it carries at least one of the given tags. An empty set clears the
// constraint.
func (s *FilterState) SetGenreFilter(genres []string) {
	s.mutate(func() { s.genres = toSet(genres) })
}

// ClearGenreFilter removes the genre constraint.
func (s *FilterState) ClearGenreFilter() {
	s.mutate(func() { s.genres = nil })
}

// SetPlatformFilter replaces the platform constraint wholesale, with the
// same matching rule as SetGenreFilter.
func (s *FilterState) SetPlatformFilter(platforms []string) {
	s.mutate(func() { s.platforms = toSet(platforms) })
}

// ClearPlatformFilter removes the platform constraint.
func (s *FilterState) ClearPlatformFilter() {
	s.mutate(func() { s.platforms = nil })
}

// FilteredGames returns, in catalog insertion order, every game satisfying
// the active predicate. Records without a valid release date are excluded
// unconditionally.
func (s *FilterState) FilteredGames() []entities.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filteredGamesLocked()
}

// FilteredLocations returns every location whose developer matches the
// studio filter (if set) and has at least one game in the current filtered
// game set. Location filtering is derived from game filtering, not
// independent.
func (s *FilterState) FilteredLocations() []entities.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	devs := make(map[string]struct{})
	for _, g := range s.filteredGamesLocked() {
		devs[g.Developer] = struct{}{}
	}

	var out []entities.Location
	for _, loc := range s.locations {
		if s.studio != "" && loc.Developer != s.studio {
			continue
		}
		if _, ok := devs[loc.Developer]; ok {
			out = append(out, loc)
		}
	}
	return out
}

// GameByTitle looks up a game by exact name in the full, unfiltered catalog.
func (s *FilterState) GameByTitle(title string) (entities.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.Name == title {
			return g, nil
		}
	}
	return entities.Game{}, fmt.Errorf("%q: %w", title, ports.ErrGameNotFound)
}

// DistinctValues returns the sorted set of distinct tags for a
// pipe-delimited field ("genre" or "platform") across the full unfiltered
// catalog.
func (s *FilterState) DistinctValues(field string) ([]string, error) {
	var pick func(entities.Game) string
	switch field {
	case "genre":
		pick = func(g entities.Game) string { return g.Genre }
	case "platform":
		pick = func(g entities.Game) string { return g.Platform }
	default:
		return nil, fmt.Errorf("unknown field %q (want genre or platform)", field)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[string]struct{})
	for _, g := range s.games {
		for _, tag := range entities.SplitTags(pick(g)) {
			set[tag] = struct{}{}
		}
	}

	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// AddGame resolves a free-text title through the external resolver and
// appends the result to the game catalog. On resolution failure it returns
// ports.ErrGameNotFound without mutating state or notifying subscribers.
// A resolved name already present in the catalog is rejected with
// ports.ErrDuplicateGame, keeping the load-time one-record-per-name
// invariant intact at runtime.
//
// The network steps run outside the mutation lock; concurrent AddGame calls
// resolve in parallel and serialize at the append.
func (s *FilterState) AddGame(ctx context.Context, title string) (entities.Game, error) {
	if s.resolver == nil {
		return entities.Game{}, fmt.Errorf("%q: %w", title, ports.ErrGameNotFound)
	}

	game, err := s.resolver.Resolve(ctx, title)
	if err != nil {
		return entities.Game{}, fmt.Errorf("resolving %q: %w", title, err)
	}

	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	s.mu.Lock()
	for _, g := range s.games {
		if g.Name == game.Name {
			s.mu.Unlock()
			return entities.Game{}, fmt.Errorf("%q: %w", game.Name, ports.ErrDuplicateGame)
		}
	}
	s.games = append(s.games, game)
	s.mu.Unlock()

	s.notify()
	return game, nil
}

// mutate applies a predicate change and fans out notifications as one
// serialized step.
func (s *FilterState) mutate(apply func()) {
	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	s.mu.Lock()
	apply()
	s.mu.Unlock()

	s.notify()
}

// notify invokes the subscriber callbacks in registration order. Callers
// hold mutMu but not mu, so callbacks are free to read derived views.
func (s *FilterState) notify() {
	s.mu.RLock()
	subs := append([]subscriber(nil), s.subs...)
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}

func (s *FilterState) filteredGamesLocked() []entities.Game {
	var out []entities.Game
	for _, g := range s.games {
		if s.matchesLocked(g) {
			out = append(out, g)
		}
	}
	return out
}

func (s *FilterState) matchesLocked(g entities.Game) bool {
	if !g.HasReleaseDate() {
		return false
	}
	if s.studio != "" && g.Developer != s.studio {
		return false
	}
	if s.yearSet {
		if y := g.Year(); y < s.startYear || y > s.endYear {
			return false
		}
	}
	if len(s.genres) > 0 && !hasAnyTag(g.Genres(), s.genres) {
		return false
	}
	if len(s.platforms) > 0 && !hasAnyTag(g.Platforms(), s.platforms) {
		return false
	}
	return true
}

func hasAnyTag(tags []string, set map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
