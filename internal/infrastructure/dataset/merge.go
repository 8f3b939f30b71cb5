// Package dataset implements the one-off catalog preparation steps: merging
// the genre column from a second catalog, collapsing per-platform duplicate
// rows into unified records, and geocoding studio names into the location
// catalog.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
)

// UnknownGenre is assigned to games absent from the genre catalog.
const UnknownGenre = "Unknown"

// Merge joins the genre column of the genre catalog into the project catalog
// by game name and writes the merged rows. Games without a genre match get
// UnknownGenre. Returns the number of matched games.
func Merge(project, genres io.Reader, out io.Writer, logger *slog.Logger) (int, error) {
	genreByName, err := readGenreIndex(genres)
	if err != nil {
		return 0, fmt.Errorf("reading genre catalog: %w", err)
	}

	reader := csv.NewReader(project)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading project catalog header: %w", err)
	}

	nameIdx, genreIdx := -1, -1
	for i, col := range header {
		switch col {
		case "name":
			nameIdx = i
		case "genre":
			genreIdx = i
		}
	}
	if nameIdx < 0 {
		return 0, fmt.Errorf("project catalog missing required column: name")
	}
	if genreIdx < 0 {
		header = append(header, "genre")
		genreIdx = len(header) - 1
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	matched := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading project catalog: %w", err)
		}

		for len(record) < len(header) {
			record = append(record, "")
		}

		name := record[nameIdx]
		if genre, ok := genreByName[name]; ok {
			record[genreIdx] = genre
			matched++
			logger.Debug("genre match", "game", name, "genre", genre)
		} else {
			record[genreIdx] = UnknownGenre
		}

		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("writing record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	logger.Info("merged genre catalog", "matched", matched)
	return matched, nil
}

// readGenreIndex builds the name-to-genre index from the genre catalog.
func readGenreIndex(r io.Reader) (map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	nameIdx, genreIdx := -1, -1
	for i, col := range header {
		switch col {
		case "name":
			nameIdx = i
		case "genre":
			genreIdx = i
		}
	}
	if nameIdx < 0 || genreIdx < 0 {
		return nil, fmt.Errorf("genre catalog must have name and genre columns")
	}

	index := make(map[string]string)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if nameIdx < len(record) && genreIdx < len(record) {
			index[record[nameIdx]] = record[genreIdx]
		}
	}

	return index, nil
}
