package library

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/opencampus/librarymap/store"
)

// weekdayHeaders are the CSV column names for per-day hours, in store order.
var weekdayHeaders = [store.WeekdayCount]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ImportCSV loads library records from a CSV export. The header row maps
// columns by name (case-insensitive); recognized columns are Id, Name,
// Description, Address, and the seven weekday names. Rows are upserted by
// Id; rows without a Name are skipped.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, errors.New("CSV header is missing the Name column")
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	result := &ImportResult{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV row")
		}

		name := field(row, "name")
		if name == "" {
			result.Skipped++
			continue
		}

		uid := field(row, "id")
		var hoursByDay [store.WeekdayCount]string
		for i, day := range weekdayHeaders {
			hoursByDay[i] = field(row, day)
		}

		var existing *store.Library
		if uid != "" {
			existing, err = s.store.GetLibrary(ctx, &store.FindLibrary{UID: &uid})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to look up library %q", uid)
			}
		} else {
			uid = newUID()
		}

		if existing != nil {
			description := field(row, "description")
			address := field(row, "address")
			if _, err := s.store.UpdateLibrary(ctx, &store.UpdateLibrary{
				ID:          existing.ID,
				Name:        &name,
				Description: &description,
				Address:     &address,
				Hours:       &hoursByDay,
			}); err != nil {
				return nil, errors.Wrapf(err, "failed to update library %q", uid)
			}
			result.Updated++
			continue
		}

		if _, err := s.store.CreateLibrary(ctx, &store.Library{
			UID:         uid,
			RowStatus:   store.Normal,
			Name:        name,
			Description: field(row, "description"),
			Address:     field(row, "address"),
			Hours:       hoursByDay,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to create library %q", name)
		}
		result.Created++
	}

	slog.Info("imported libraries from CSV",
		"created", result.Created, "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}

// ImportCoordinates loads a JSON object keyed by library UID, each value
// holding lat/lng in decimal degrees. Unknown UIDs are skipped.
func (s *Service) ImportCoordinates(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var coordsByUID map[string]struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.NewDecoder(r).Decode(&coordsByUID); err != nil {
		return nil, errors.Wrap(err, "failed to decode coordinates JSON")
	}

	result := &ImportResult{}
	for uid, coords := range coordsByUID {
		updated, err := s.UpdateCoordinates(ctx, uid, coords.Lat, coords.Lng)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to set coordinates for %q", uid)
		}
		if updated == nil {
			slog.Warn("coordinates import references unknown library", "uid", uid)
			result.Skipped++
			continue
		}
		result.Updated++
	}

	slog.Info("imported library coordinates", "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}
