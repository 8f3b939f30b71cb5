package main

import (
	"fmt"
	"os"

	"github.com/perdan/gamescope/internal/domain/ports"
	"github.com/perdan/gamescope/internal/domain/services"
	"github.com/perdan/gamescope/internal/infrastructure/catalog"
	"github.com/perdan/gamescope/internal/infrastructure/config"
	"github.com/perdan/gamescope/internal/infrastructure/resolver/rawg"
)

// deps holds the high-level dependencies for commands.
type deps struct {
	Config *config.Config
	State  *services.FilterState
}

// withDeps loads the config and both catalogs, builds the filter engine and
// calls the provided function. An unreadable catalog fails fast here; there
// is no partial-catalog mode.
func withDeps(fn func(*deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	games, err := catalog.LoadGames(cfg.Data.Games)
	if err != nil {
		return fmt.Errorf("loading game catalog: %w", err)
	}

	locations, err := catalog.LoadLocations(cfg.Data.Locations)
	if err != nil {
		return fmt.Errorf("loading location catalog: %w", err)
	}

	var resolver ports.GameResolver
	if cfg.RAWG.APIKey != "" {
		client, err := rawg.NewClient(cfg.RAWG)
		if err != nil {
			return fmt.Errorf("creating resolver: %w", err)
		}
		resolver = client
	}

	state := services.NewFilterState(games, locations, resolver)

	return fn(&deps{Config: cfg, State: state})
}
