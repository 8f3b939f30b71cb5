package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perdan/gamescope/internal/application/handlers"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <title>",
		Short: "Show the details of a single game",
		Long:  "Looks up a game by exact title and prints its details together with the studio's location.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(title string) error {
	return withDeps(func(d *deps) error {
		result, err := handlers.NewInfoHandler(d.State).Handle(title)
		if err != nil {
			return err
		}

		printGame(result.Game)

		if result.Location != nil {
			fmt.Println()
			fmt.Print("Studio location: ")
			printLocation(*result.Location)
		}

		return nil
	})
}
