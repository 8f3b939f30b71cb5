package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/perdan/gamescope/internal/domain/ports"
)

// locationHeader matches the columns of the location catalog source.
var locationHeader = []string{"Developer", "Latitude", "Longitude", "Place Name", "Address"}

// GeocodeStudios reads one studio name per line, resolves each through the
// geocoder and writes the location catalog CSV. Studios that fail to geocode
// are logged and skipped; the batch keeps going. Returns the number of
// locations written.
func GeocodeStudios(ctx context.Context, geocoder ports.Geocoder, in io.Reader, out io.Writer, logger *slog.Logger) (int, error) {
	writer := csv.NewWriter(out)
	if err := writer.Write(locationHeader); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	written := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		developer := strings.TrimSpace(scanner.Text())
		if developer == "" {
			continue
		}

		if err := ctx.Err(); err != nil {
			return written, err
		}

		logger.Info("geocoding studio", "developer", developer)
		loc, err := geocoder.Locate(ctx, developer)
		if err != nil {
			logger.Warn("skipping studio", "developer", developer, "error", err)
			continue
		}

		record := []string{
			loc.Developer,
			strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
			strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
			loc.PlaceName,
			loc.Address,
		}
		if err := writer.Write(record); err != nil {
			return written, fmt.Errorf("writing record: %w", err)
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return written, fmt.Errorf("reading studio list: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return written, fmt.Errorf("flushing output: %w", err)
	}

	logger.Info("geocoded studios", "written", written)
	return written, nil
}
