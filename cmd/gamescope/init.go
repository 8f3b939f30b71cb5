package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize gamescope configuration",
		Long:  "Creates a .gamescope directory with a default configuration file.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("gamescope already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))
	fmt.Println("Point data.games and data.locations at your catalog files, then run 'gamescope query'.")

	return nil
}
