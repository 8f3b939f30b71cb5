package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/application/handlers"
)

func newQueryCmd() *cobra.Command {
	var filters handlers.Filters

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List games and studio locations under the given filters",
		Long:  "Filters the catalog by studio, year range, genres and platforms and prints the matching games with their studio locations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(filters)
		},
	}

	cmd.Flags().StringVarP(&filters.Studio, "studio", "s", "", "Filter by developer studio")
	cmd.Flags().IntVar(&filters.FromYear, "from", 0, "First release year (inclusive)")
	cmd.Flags().IntVar(&filters.ToYear, "to", 0, "Last release year (inclusive)")
	cmd.Flags().StringSliceVarP(&filters.Genres, "genre", "g", nil, "Filter by genre (repeatable, any match)")
	cmd.Flags().StringSliceVarP(&filters.Platforms, "platform", "p", nil, "Filter by platform (repeatable, any match)")

	return cmd
}

func runQuery(filters handlers.Filters) error {
	return withDeps(func(d *deps) error {
		result := handlers.NewQueryHandler(d.State).Handle(filters)

		if len(result.Games) == 0 {
			fmt.Println("No games match the given filters.")
			return nil
		}

		fmt.Printf("Found %d games:\n\n", len(result.Games))
		for _, g := range result.Games {
			year := "????"
			if g.HasReleaseDate() {
				year = fmt.Sprint(g.Year())
			}
			fmt.Printf("%s (%s) - %s [%s]\n", g.Name, year, g.Developer, displayTags(g.Genre))
		}

		if len(result.Locations) > 0 {
			fmt.Printf("\nStudio locations:\n")
			for _, loc := range result.Locations {
				printLocation(loc)
			}
		}

		return nil
	})
}
