package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/application/handlers"
	"github.com/perdan/gamescope/internal/application/views"
)

func newTimelineCmd() *cobra.Command {
	var (
		filters handlers.Filters
		page    int
		year    int
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the per-year release timeline",
		Long:  "Aggregates the filtered catalog into release counts per year over a paging window. Use --page to shift the window and --year to drill into a single year.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(filters, page, year)
		},
	}

	cmd.Flags().StringVarP(&filters.Studio, "studio", "s", "", "Filter by developer studio")
	cmd.Flags().IntVar(&filters.FromYear, "from", 0, "First release year (inclusive)")
	cmd.Flags().IntVar(&filters.ToYear, "to", 0, "Last release year (inclusive)")
	cmd.Flags().StringSliceVarP(&filters.Genres, "genre", "g", nil, "Filter by genre (repeatable, any match)")
	cmd.Flags().StringSliceVarP(&filters.Platforms, "platform", "p", nil, "Filter by platform (repeatable, any match)")
	cmd.Flags().IntVar(&page, "page", 0, "Shift the display window by this many years")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Drill into a single year and list its releases")

	return cmd
}

func runTimeline(filters handlers.Filters, page, year int) error {
	return withDeps(func(d *deps) error {
		handlers.NewQueryHandler(d.State).Handle(filters)

		timeline := views.NewTimeline(d.State)
		defer timeline.Close()

		for i := 0; i < page; i++ {
			timeline.NextYear()
		}
		for i := 0; i > page; i-- {
			timeline.PreviousYear()
		}

		if year != 0 {
			timeline.SelectYear(year)
			games := timeline.GamesFor(year)
			if len(games) == 0 {
				fmt.Printf("No releases in %d.\n", year)
				return nil
			}
			fmt.Printf("Releases in %d:\n", year)
			for _, g := range games {
				fmt.Printf("  %s - %s\n", g.Name, g.Developer)
			}
			return nil
		}

		start, end := timeline.Window()
		fmt.Printf("Releases per year (%d-%d):\n", start, end)

		counts := timeline.ReleaseCounts()
		visible := timeline.VisibleYears()
		if len(visible) == 0 {
			fmt.Println("  no releases inside the window")
			return nil
		}

		for _, y := range visible {
			fmt.Printf("  %d %s %d\n", y, strings.Repeat("#", counts[y]), counts[y])
		}
		return nil
	})
}
