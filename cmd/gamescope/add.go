package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/application/handlers"
	"github.com/perdan/gamescope/internal/domain/ports"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Resolve a game through the metadata API and add it to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0])
		},
	}
}

func runAdd(cmd *cobra.Command, title string) error {
	ctx := cmd.Context()

	return withDeps(func(d *deps) error {
		if d.Config.RAWG.APIKey == "" {
			return errors.New("adding games requires a RAWG API key (set rawg.api_key or RAWG_API_KEY)")
		}

		game, err := handlers.NewAddHandler(d.State).Handle(ctx, title)
		if errors.Is(err, ports.ErrDuplicateGame) {
			fmt.Printf("Game is already in the catalog: %s\n", title)
			return nil
		}
		if errors.Is(err, ports.ErrGameNotFound) {
			// Search misses and transport errors read the same on purpose.
			fmt.Printf("Game or developer not found: %s\n", title)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Added %q:\n\n", game.Name)
		printGame(game)

		return nil
	})
}
