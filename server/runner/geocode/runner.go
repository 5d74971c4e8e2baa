// Package geocode provides a background runner that fills in missing
// coordinates for library records.
package geocode

import (
	"context"
	"log/slog"
	"time"

	"github.com/opencampus/librarymap/server/geocoder"
	"github.com/opencampus/librarymap/store"
)

type Runner struct {
	store    *store.Store
	client   *geocoder.Client
	interval time.Duration
}

// NewRunner creates a geocoding runner. The interval is long because the
// record set is small and addresses rarely change; the client's own rate
// limiter paces individual requests.
func NewRunner(store *store.Store, client *geocoder.Client) *Runner {
	return &Runner{
		store:    store,
		client:   client,
		interval: 1 * time.Hour,
	}
}

// Run starts the background task.
func (r *Runner) Run(ctx context.Context) {
	// Process once on startup
	r.processMissingCoordinates(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.processMissingCoordinates(ctx)
		case <-ctx.Done():
			slog.Info("geocode runner stopped")
			return
		}
	}
}

// RunOnce processes missing coordinates once (for manual trigger).
func (r *Runner) RunOnce(ctx context.Context) {
	r.processMissingCoordinates(ctx)
}

func (r *Runner) processMissingCoordinates(ctx context.Context) {
	normalStatus := store.Normal
	libraries, err := r.store.ListLibraries(ctx, &store.FindLibrary{
		RowStatus:          &normalStatus,
		MissingCoordinates: true,
	})
	if err != nil {
		slog.Error("failed to list libraries missing coordinates", "error", err)
		return
	}

	if len(libraries) == 0 {
		return
	}

	slog.Info("geocoding libraries", "count", len(libraries))

	for _, library := range libraries {
		select {
		case <-ctx.Done():
			slog.Info("geocoding cancelled")
			return
		default:
		}

		if library.Address == "" {
			continue
		}

		coords, err := r.client.Geocode(ctx, library.Address)
		if err != nil {
			slog.Error("failed to geocode library",
				"uid", library.UID,
				"address", library.Address,
				"error", err)
			continue
		}
		if coords == nil {
			slog.Warn("no geocode result for library",
				"uid", library.UID,
				"address", library.Address)
			continue
		}

		if _, err := r.store.UpdateLibrary(ctx, &store.UpdateLibrary{
			ID:        library.ID,
			Latitude:  &coords.Lat,
			Longitude: &coords.Lng,
		}); err != nil {
			slog.Error("failed to save library coordinates", "uid", library.UID, "error", err)
			continue
		}

		slog.Info("geocoded library", "uid", library.UID, "lat", coords.Lat, "lng", coords.Lng)
	}
}
