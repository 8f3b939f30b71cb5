package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// LoadLocations reads the studio location catalog from the given path.
func LoadLocations(path string) ([]entities.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening location catalog: %w", err)
	}
	defer f.Close()

	locations, err := ParseLocations(f)
	if err != nil {
		return nil, fmt.Errorf("parsing location catalog %s: %w", path, err)
	}
	return locations, nil
}

// ParseLocations reads CSV from the reader and returns the location records.
// Expected columns: Developer, Latitude, Longitude, Place Name, Address
func ParseLocations(r io.Reader) ([]entities.Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := readHeader(reader, []string{"Developer", "Latitude", "Longitude"})
	if err != nil {
		return nil, err
	}

	var locations []entities.Location
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

		loc, err := parseLocationRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// parseLocationRecord converts a CSV record to a Location.
func parseLocationRecord(record []string, colIndex map[string]int, lineNum int) (entities.Location, error) {
	lat, err := strconv.ParseFloat(getColumn(record, colIndex, "Latitude"), 64)
	if err != nil {
		return entities.Location{}, fmt.Errorf("line %d: invalid latitude %q: %w", lineNum, getColumn(record, colIndex, "Latitude"), err)
	}

	lng, err := strconv.ParseFloat(getColumn(record, colIndex, "Longitude"), 64)
	if err != nil {
		return entities.Location{}, fmt.Errorf("line %d: invalid longitude %q: %w", lineNum, getColumn(record, colIndex, "Longitude"), err)
	}

	return entities.Location{
		Developer: getColumn(record, colIndex, "Developer"),
		Latitude:  lat,
		Longitude: lng,
		PlaceName: getColumn(record, colIndex, "Place Name"),
		Address:   getColumn(record, colIndex, "Address"),
	}, nil
}
