package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/perdan/gamescope/internal/domain/entities"
)

// Unify collapses per-platform duplicate rows into one record per game. The
// first-seen row provides every field except platform, which becomes the
// pipe-joined set of all platforms the game appeared on. Rows missing a name
// or platform are skipped, as is the pseudo-platform "All". Returns the
// number of unified records written.
func Unify(in io.Reader, out io.Writer, logger *slog.Logger) (int, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	nameIdx, platformIdx := -1, -1
	for i, col := range header {
		switch col {
		case "name":
			nameIdx = i
		case "platform":
			platformIdx = i
		}
	}
	if nameIdx < 0 || platformIdx < 0 {
		return 0, fmt.Errorf("catalog must have name and platform columns")
	}

	type unifiedRow struct {
		record    []string
		platforms []string
		seen      map[string]struct{}
	}

	var order []string
	rows := make(map[string]*unifiedRow)
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading catalog: %w", err)
		}

		for len(record) < len(header) {
			record = append(record, "")
		}

		name := record[nameIdx]
		platform := record[platformIdx]
		if name == "" || platform == "" {
			skipped++
			continue
		}
		if strings.EqualFold(platform, "all") {
			logger.Debug("ignoring pseudo-platform", "game", name)
			skipped++
			continue
		}

		row, ok := rows[name]
		if !ok {
			row = &unifiedRow{
				record: append([]string(nil), record...),
				seen:   make(map[string]struct{}),
			}
			rows[name] = row
			order = append(order, name)
		}
		if _, dup := row.seen[platform]; !dup {
			row.seen[platform] = struct{}{}
			row.platforms = append(row.platforms, platform)
		}
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, name := range order {
		row := rows[name]
		row.record[platformIdx] = entities.JoinTags(row.platforms)
		if err := writer.Write(row.record); err != nil {
			return 0, fmt.Errorf("writing record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	logger.Info("unified catalog", "games", len(order), "skipped_rows", skipped)
	return len(order), nil
}
