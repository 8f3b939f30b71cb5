// Package catalog loads the two CSV catalog sources into typed records.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// dateLayouts are tried in order when parsing release dates. A date that
// matches none of them marks the record as undated rather than failing the
// load.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006",
}

// LoadGames reads the unified game catalog from the given path. A missing
// or unreadable file is a fatal startup error; the system has no
// partial-catalog mode.
func LoadGames(path string) ([]entities.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening game catalog: %w", err)
	}
	defer f.Close()

	games, err := ParseGames(f)
	if err != nil {
		return nil, fmt.Errorf("parsing game catalog %s: %w", path, err)
	}
	return games, nil
}

// ParseGames reads CSV from the reader and returns the game records,
// deduplicated by name keeping the first-seen row.
// Expected columns: name, date, platform, publisher, developer, genre,
// shipped, total, europe, japan, america, other, critic, user
func ParseGames(r io.Reader) ([]entities.Game, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := readHeader(reader, []string{"name", "date", "platform", "publisher", "developer", "genre"})
	if err != nil {
		return nil, err
	}

	var games []entities.Game
	seen := make(map[string]struct{})
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		game := parseGameRecord(record, colIndex)
		if game.Name == "" {
			continue
		}
		if _, dup := seen[game.Name]; dup {
			continue
		}
		seen[game.Name] = struct{}{}
		games = append(games, game)
	}

	return games, nil
}

// parseGameRecord converts a CSV record to a Game.
func parseGameRecord(record []string, colIndex map[string]int) entities.Game {
	return entities.Game{
		Name:      getColumn(record, colIndex, "name"),
		Released:  ParseReleaseDate(getColumn(record, colIndex, "date")),
		Platform:  getColumn(record, colIndex, "platform"),
		Publisher: getColumn(record, colIndex, "publisher"),
		Developer: getColumn(record, colIndex, "developer"),
		Genre:     getColumn(record, colIndex, "genre"),
		Shipped:   parseOptionalFloat(getColumn(record, colIndex, "shipped")),
		Total:     parseOptionalFloat(getColumn(record, colIndex, "total")),
		Europe:    parseOptionalFloat(getColumn(record, colIndex, "europe")),
		Japan:     parseOptionalFloat(getColumn(record, colIndex, "japan")),
		America:   parseOptionalFloat(getColumn(record, colIndex, "america")),
		Other:     parseOptionalFloat(getColumn(record, colIndex, "other")),
		Critic:    parseOptionalFloat(getColumn(record, colIndex, "critic")),
		User:      parseOptionalFloat(getColumn(record, colIndex, "user")),
	}
}

// ParseReleaseDate parses a release date. Unparseable input yields the zero
// time, which marks the record as undated.
func ParseReleaseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseOptionalFloat parses a numeric field leniently. Empty or malformed
// input means unknown, not zero.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// readHeader reads the CSV header row and validates the required columns.
func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	for _, col := range required {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
