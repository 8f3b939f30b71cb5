package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/infrastructure/config"
	"github.com/perdan/gamescope/internal/infrastructure/dataset"
	"github.com/perdan/gamescope/internal/infrastructure/geocoder/places"
)

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build and enrich the catalog data files",
	}

	cmd.AddCommand(newDatasetMergeCmd())
	cmd.AddCommand(newDatasetUnifyCmd())
	cmd.AddCommand(newDatasetGeocodeCmd())

	return cmd
}

func newDatasetMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <project.csv> <genres.csv> <out.csv>",
		Short: "Join genre tags into the project dataset by game name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetMerge(args[0], args[1], args[2])
		},
	}
}

func runDatasetMerge(projectPath, genresPath, outPath string) error {
	logger := datasetLogger()

	project, err := os.Open(projectPath)
	if err != nil {
		return fmt.Errorf("opening project dataset: %w", err)
	}
	defer project.Close()

	genres, err := os.Open(genresPath)
	if err != nil {
		return fmt.Errorf("opening genre dataset: %w", err)
	}
	defer genres.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	matched, err := dataset.Merge(project, genres, out, logger)
	if err != nil {
		return fmt.Errorf("merging datasets: %w", err)
	}

	fmt.Printf("Merged genres for %d games into %s\n", matched, outPath)
	return nil
}

func newDatasetUnifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unify <in.csv> <out.csv>",
		Short: "Collapse per-platform rows into one row per game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetUnify(args[0], args[1])
		},
	}
}

func runDatasetUnify(inPath, outPath string) error {
	logger := datasetLogger()

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input dataset: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	unified, err := dataset.Unify(in, out, logger)
	if err != nil {
		return fmt.Errorf("unifying dataset: %w", err)
	}

	fmt.Printf("Wrote %d unified games to %s\n", unified, outPath)
	return nil
}

func newDatasetGeocodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geocode <studios.txt> <out.csv>",
		Short: "Geocode studio names into the location catalog",
		Long:  "Reads one studio name per line and writes their coordinates looked up through the Places API. Studios that cannot be located are logged and skipped.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetGeocode(cmd, args[0], args[1])
		},
	}
}

func runDatasetGeocode(cmd *cobra.Command, inPath, outPath string) error {
	logger := datasetLogger()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	geocoder, err := places.NewClient(cfg.Places)
	if err != nil {
		return fmt.Errorf("creating geocoder: %w", err)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening studio list: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	located, err := dataset.GeocodeStudios(cmd.Context(), geocoder, in, out, logger)
	if err != nil {
		return fmt.Errorf("geocoding studios: %w", err)
	}

	fmt.Printf("Located %d studios into %s\n", located, outPath)
	return nil
}

func datasetLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
