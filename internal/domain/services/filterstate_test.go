package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/mocks"
	"github.com/perdan/gamescope/internal/domain/ports"
)

func game(name string, year int, genre, platform, developer string) entities.Game {
	return entities.Game{
		Name:      name,
		Released:  time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC),
		Genre:     genre,
		Platform:  platform,
		Developer: developer,
	}
}

func testCatalog() ([]entities.Game, []entities.Location) {
	games := []entities.Game{
		game("A", 2010, "RPG|Action", "PC", "Foo"),
		game("B", 2015, "Action", "PS4|PC", "Bar"),
		game("C", 2012, "Strategy", "PC", "Foo"),
		{Name: "Undated", Genre: "Action", Platform: "PC", Developer: "Foo"},
	}
	locations := []entities.Location{
		{Developer: "Foo", Latitude: 1, Longitude: 1},
		{Developer: "Bar", Latitude: 2, Longitude: 2},
		{Developer: "Baz", Latitude: 3, Longitude: 3},
	}
	return games, locations
}

func names(games []entities.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

func TestFilterState_ExcludesRecordsWithoutDate(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	// Unconditional: the undated record never shows up, whatever the
	// predicate looks like.
	assert.NotContains(t, names(state.FilteredGames()), "Undated")

	state.SetGenreFilter([]string{"Action"})
	assert.NotContains(t, names(state.FilteredGames()), "Undated")

	state.SetStudioFilter("Foo")
	assert.NotContains(t, names(state.FilteredGames()), "Undated")

	state.SetYearRange(1900, 2100)
	assert.NotContains(t, names(state.FilteredGames()), "Undated")
}

func TestFilterState_GenreFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter []string
		want   []string
	}{
		{
			name:   "single tag matches records carrying it",
			filter: []string{"Action"},
			want:   []string{"A", "B"},
		},
		{
			name:   "match requires only a non-empty intersection",
			filter: []string{"RPG", "Strategy"},
			want:   []string{"A", "C"},
		},
		{
			name:   "no intersection excludes the record",
			filter: []string{"Sports", "Racing"},
			want:   nil,
		},
		{
			name:   "empty set imposes no constraint",
			filter: nil,
			want:   []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, locations := testCatalog()
			state := NewFilterState(games, locations, nil)
			state.SetGenreFilter(tt.filter)
			assert.Equal(t, tt.want, names(state.FilteredGames()))
		})
	}
}

func TestFilterState_PlatformFilter(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	state.SetPlatformFilter([]string{"PS4"})
	assert.Equal(t, []string{"B"}, names(state.FilteredGames()))

	state.SetPlatformFilter([]string{"PC"})
	assert.Equal(t, []string{"A", "B", "C"}, names(state.FilteredGames()))

	state.SetPlatformFilter([]string{"Switch"})
	assert.Empty(t, state.FilteredGames())
}

func TestFilterState_AxesCombineByAND(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	state.SetGenreFilter([]string{"Action", "Strategy"})
	state.SetStudioFilter("Foo")
	assert.Equal(t, []string{"A", "C"}, names(state.FilteredGames()))

	state.SetYearRange(2011, 2020)
	assert.Equal(t, []string{"C"}, names(state.FilteredGames()))
}

func TestFilterState_SetThenClearRestoresBaseline(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)
	state.SetGenreFilter([]string{"Action"})
	baseline := names(state.FilteredGames())

	tests := []struct {
		name  string
		set   func()
		clear func()
	}{
		{"studio", func() { state.SetStudioFilter("Bar") }, state.ClearStudioFilter},
		{"year range", func() { state.SetYearRange(2015, 2015) }, state.ClearYearRange},
		{"platform", func() { state.SetPlatformFilter([]string{"PS4"}) }, state.ClearPlatformFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			tt.clear()
			assert.Equal(t, baseline, names(state.FilteredGames()))
		})
	}
}

func TestFilterState_InvertedYearRangeYieldsEmpty(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	state.SetYearRange(2015, 2010)
	assert.Empty(t, state.FilteredGames())

	state.ClearYearRange()
	assert.Len(t, state.FilteredGames(), 3)
}

func TestFilterState_FilteredLocationsDerivedFromGames(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	// Baz has no games at all, so its location never appears.
	locs := state.FilteredLocations()
	require.Len(t, locs, 2)
	assert.Equal(t, "Foo", locs[0].Developer)
	assert.Equal(t, "Bar", locs[1].Developer)

	// Every returned location's developer must have a filtered game.
	state.SetYearRange(2010, 2012)
	locs = state.FilteredLocations()
	require.Len(t, locs, 1)
	assert.Equal(t, "Foo", locs[0].Developer)

	// Studio filter applies to locations directly as well.
	state.ClearYearRange()
	state.SetStudioFilter("Bar")
	locs = state.FilteredLocations()
	require.Len(t, locs, 1)
	assert.Equal(t, "Bar", locs[0].Developer)
}

func TestFilterState_ScenarioFromCatalog(t *testing.T) {
	games := []entities.Game{
		game("A", 2010, "RPG|Action", "PC", "Foo"),
		game("B", 2015, "Action", "PC", "Bar"),
	}
	locations := []entities.Location{
		{Developer: "Foo", Latitude: 1, Longitude: 1},
		{Developer: "Bar", Latitude: 2, Longitude: 2},
	}
	state := NewFilterState(games, locations, nil)

	state.SetYearRange(2010, 2010)
	assert.Equal(t, []string{"A"}, names(state.FilteredGames()))
	locs := state.FilteredLocations()
	require.Len(t, locs, 1)
	assert.Equal(t, "Foo", locs[0].Developer)

	state.ClearYearRange()
	state.SetGenreFilter([]string{"Action"})
	assert.Equal(t, []string{"A", "B"}, names(state.FilteredGames()))
	assert.Len(t, state.FilteredLocations(), 2)
}

func TestFilterState_NotifiesOncePerMutation(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	count := 0
	state.Subscribe(func(*FilterState) { count++ })

	state.SetStudioFilter("Foo")
	state.ClearStudioFilter()
	state.SetYearRange(2010, 2012)
	state.ClearYearRange()
	state.SetGenreFilter([]string{"Action"})
	state.ClearGenreFilter()
	state.SetPlatformFilter([]string{"PC"})
	state.ClearPlatformFilter()

	assert.Equal(t, 8, count)
}

func TestFilterState_SubscriberSeesPostMutationState(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	var seen []string
	state.Subscribe(func(s *FilterState) {
		seen = names(s.FilteredGames())
	})

	state.SetYearRange(2015, 2015)
	assert.Equal(t, []string{"B"}, seen)
}

func TestFilterState_NotifiesInRegistrationOrder(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	var order []string
	state.Subscribe(func(*FilterState) { order = append(order, "first") })
	state.Subscribe(func(*FilterState) { order = append(order, "second") })

	state.SetStudioFilter("Foo")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFilterState_Unsubscribe(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	count := 0
	id := state.Subscribe(func(*FilterState) { count++ })

	state.SetStudioFilter("Foo")
	state.Unsubscribe(id)
	state.ClearStudioFilter()

	assert.Equal(t, 1, count)
}

func TestFilterState_GameByTitle(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	// Lookup runs against the full catalog, ignoring active filters.
	state.SetStudioFilter("Bar")
	g, err := state.GameByTitle("A")
	require.NoError(t, err)
	assert.Equal(t, "Foo", g.Developer)

	_, err = state.GameByTitle("a")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestFilterState_DistinctValues(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	// Not filter-sensitive: set a predicate that excludes most records.
	state.SetStudioFilter("Bar")

	genres, err := state.DistinctValues("genre")
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "RPG", "Strategy"}, genres)

	platforms, err := state.DistinctValues("platform")
	require.NoError(t, err)
	assert.Equal(t, []string{"PC", "PS4"}, platforms)

	_, err = state.DistinctValues("publisher")
	assert.Error(t, err)
}

func TestFilterState_AddGame(t *testing.T) {
	games, locations := testCatalog()
	resolver := &mocks.GameResolver{
		Game: game("D", 2020, "RPG", "PC", "Qux"),
	}
	state := NewFilterState(games, locations, resolver)

	count := 0
	state.Subscribe(func(*FilterState) { count++ })

	added, err := state.AddGame(context.Background(), "some title")
	require.NoError(t, err)
	assert.Equal(t, "D", added.Name)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(state.FilteredGames()))

	g, err := state.GameByTitle("D")
	require.NoError(t, err)
	assert.Equal(t, "Qux", g.Developer)
}

func TestFilterState_AddGameNotFound(t *testing.T) {
	games, locations := testCatalog()
	resolver := &mocks.GameResolver{Err: ports.ErrGameNotFound}
	state := NewFilterState(games, locations, resolver)

	count := 0
	state.Subscribe(func(*FilterState) { count++ })

	_, err := state.AddGame(context.Background(), "NonexistentTitle123")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
	assert.Equal(t, 0, count)
	assert.Len(t, state.FilteredGames(), 3)
}

func TestFilterState_AddGameTransportErrorIsNotFound(t *testing.T) {
	// Transport errors and search misses are reported identically.
	games, locations := testCatalog()
	resolver := &mocks.GameResolver{
		Err: errors.Join(ports.ErrGameNotFound, errors.New("connection refused")),
	}
	state := NewFilterState(games, locations, resolver)

	_, err := state.AddGame(context.Background(), "anything")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestFilterState_AddGameRejectsDuplicateName(t *testing.T) {
	games, locations := testCatalog()
	resolver := &mocks.GameResolver{
		Game: game("A", 2010, "RPG", "PC", "Foo"),
	}
	state := NewFilterState(games, locations, resolver)

	count := 0
	state.Subscribe(func(*FilterState) { count++ })

	_, err := state.AddGame(context.Background(), "A")
	assert.ErrorIs(t, err, ports.ErrDuplicateGame)
	assert.Equal(t, 0, count)
	assert.Len(t, state.FilteredGames(), 3)
}

func TestFilterState_AddGameWithoutResolver(t *testing.T) {
	games, locations := testCatalog()
	state := NewFilterState(games, locations, nil)

	_, err := state.AddGame(context.Background(), "anything")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestFilterState_InsertionOrderPreserved(t *testing.T) {
	games := []entities.Game{
		game("Zulu", 2010, "Action", "PC", "Foo"),
		game("Alpha", 2011, "Action", "PC", "Foo"),
		game("Mike", 2012, "Action", "PC", "Foo"),
	}
	state := NewFilterState(games, nil, nil)

	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, names(state.FilteredGames()))
}
