package main

import (
	"fmt"
	"strings"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// printGame writes the detail block of one game, skipping unknown figures.
func printGame(g entities.Game) {
	fmt.Printf("Name:      %s\n", g.Name)
	fmt.Printf("Genre(s):  %s\n", displayTags(g.Genre))
	fmt.Printf("Platforms: %s\n", displayTags(g.Platform))
	fmt.Printf("Publisher: %s\n", g.Publisher)
	fmt.Printf("Developer: %s\n", g.Developer)
	if g.HasReleaseDate() {
		fmt.Printf("Released:  %s\n", g.Released.Format("2 Jan 2006"))
	} else {
		fmt.Printf("Released:  unknown\n")
	}

	printFigure("Shipped units", g.Shipped)
	printFigure("Total sales", g.Total)
	printFigure("Sales Europe", g.Europe)
	printFigure("Sales Japan", g.Japan)
	printFigure("Sales America", g.America)
	printFigure("Sales other", g.Other)
	printFigure("Critic score", g.Critic)
	printFigure("User score", g.User)
}

func printFigure(label string, v *float64) {
	if v == nil {
		return
	}
	fmt.Printf("%-14s %.2f\n", label+":", *v)
}

func displayTags(s string) string {
	return strings.Join(entities.SplitTags(s), " | ")
}

func printLocation(loc entities.Location) {
	fmt.Printf("%s (%.4f, %.4f)", loc.Developer, loc.Latitude, loc.Longitude)
	if loc.Address != "" {
		fmt.Printf(" - %s", loc.Address)
	}
	fmt.Println()
}
