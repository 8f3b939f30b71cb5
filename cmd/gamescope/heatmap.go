package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/application/handlers"
	"github.com/perdan/gamescope/internal/application/views"
)

func newHeatmapCmd() *cobra.Command {
	var (
		filters handlers.Filters
		markers bool
		radius  float64
	)

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show the studio locations of the filtered catalog",
		Long:  "Lists the studio locations derived from the filtered catalog, with their heat weights or marker colors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeatmap(filters, markers, radius)
		},
	}

	cmd.Flags().StringVarP(&filters.Studio, "studio", "s", "", "Filter by developer studio")
	cmd.Flags().IntVar(&filters.FromYear, "from", 0, "First release year (inclusive)")
	cmd.Flags().IntVar(&filters.ToYear, "to", 0, "Last release year (inclusive)")
	cmd.Flags().StringSliceVarP(&filters.Genres, "genre", "g", nil, "Filter by genre (repeatable, any match)")
	cmd.Flags().StringSliceVarP(&filters.Platforms, "platform", "p", nil, "Filter by platform (repeatable, any match)")
	cmd.Flags().BoolVarP(&markers, "markers", "m", false, "Render discrete markers instead of the density layer")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 1000, "Marker clustering radius in meters")

	return cmd
}

func runHeatmap(filters handlers.Filters, markers bool, radius float64) error {
	return withDeps(func(d *deps) error {
		handlers.NewQueryHandler(d.State).Handle(filters)

		heatmap := views.NewHeatmap(d.State)
		defer heatmap.Close()

		if markers {
			heatmap.ToggleMode()
		}

		locations := heatmap.Display()
		if len(locations) == 0 {
			fmt.Println("No studio locations match the given filters.")
			return nil
		}

		fmt.Printf("%d studio locations:\n", len(locations))
		for _, loc := range locations {
			if heatmap.Mode() == views.ModeMarkers {
				fmt.Printf("  %-30s (%.4f, %.4f) marker=%s\n",
					loc.Developer, loc.Latitude, loc.Longitude, heatmap.MarkerColor(loc, radius))
			} else {
				fmt.Printf("  %-30s (%.4f, %.4f) weight=%.1f\n",
					loc.Developer, loc.Latitude, loc.Longitude, heatmap.Weight(loc))
			}
		}

		if heatmap.Mode() == views.ModeHeat {
			fmt.Printf("\nDensity thresholds: %v\n", heatmap.DensityThresholds())
		}
		return nil
	})
}
