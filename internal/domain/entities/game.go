// Package entities contains core domain data structures.
package entities

import (
	"strings"
	"time"
)

// TagSeparator joins multi-valued fields (platforms, genres) into a single
// catalog string. The CSV catalogs and the resolver both use it.
const TagSeparator = "|"

// Game represents a single release in the catalog. Name is the unique key,
// case-sensitive and case-preserved. Platform and Genre hold pipe-delimited
// tag sets serialized as one string. A zero Released value marks a record
// whose release date could not be parsed; such records stay in the backing
// catalog but are excluded from every filtered view.
type Game struct {
	Name      string    `json:"name"`
	Released  time.Time `json:"released"`
	Platform  string    `json:"platform"`
	Publisher string    `json:"publisher"`
	Developer string    `json:"developer"`
	Genre     string    `json:"genre"`

	// Sales and score figures. nil means unknown, not zero.
	Shipped *float64 `json:"shipped,omitempty"`
	Total   *float64 `json:"total,omitempty"`
	Europe  *float64 `json:"europe,omitempty"`
	Japan   *float64 `json:"japan,omitempty"`
	America *float64 `json:"america,omitempty"`
	Other   *float64 `json:"other,omitempty"`
	Critic  *float64 `json:"critic,omitempty"`
	User    *float64 `json:"user,omitempty"`
}

// HasReleaseDate reports whether the record carries a parseable release date.
func (g Game) HasReleaseDate() bool {
	return !g.Released.IsZero()
}

// Year returns the release year, or 0 for records without a valid date.
func (g Game) Year() int {
	if !g.HasReleaseDate() {
		return 0
	}
	return g.Released.Year()
}

// Genres returns the individual genre tags of the record.
func (g Game) Genres() []string {
	return SplitTags(g.Genre)
}

// Platforms returns the individual platform tags of the record.
func (g Game) Platforms() []string {
	return SplitTags(g.Platform)
}

// SplitTags splits a pipe-delimited tag string into its tokens, dropping
// empty ones. An empty input yields no tokens.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, TagSeparator) {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags serializes tag tokens into the catalog's pipe-delimited form.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagSeparator)
}
