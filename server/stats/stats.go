// Package stats summarizes the library inventory and its live status.
// This is a lightweight alternative to an external metrics stack.
package stats

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/opencampus/librarymap/server/hours"
	"github.com/opencampus/librarymap/store"
)

// Snapshot is the state of the inventory at one evaluated instant.
type Snapshot struct {
	Total           int `json:"total"`
	WithCoordinates int `json:"with_coordinates"`

	Open        int `json:"open"`
	ClosingSoon int `json:"closing_soon"`
	Closed      int `json:"closed"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Lister is the slice of the store the collector needs.
type Lister interface {
	ListLibraries(ctx context.Context, find *store.FindLibrary) ([]*store.Library, error)
}

// Collector builds inventory snapshots on demand. Snapshots are cheap to
// compute, so nothing is cached between calls.
type Collector struct {
	store Lister
}

func NewCollector(store Lister) *Collector {
	return &Collector{store: store}
}

// Collect classifies every active record at the given instant.
func (c *Collector) Collect(ctx context.Context, at time.Time) (*Snapshot, error) {
	normalStatus := store.Normal
	libraries, err := c.store.ListLibraries(ctx, &store.FindLibrary{RowStatus: &normalStatus})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list libraries")
	}

	snapshot := &Snapshot{
		Total:       len(libraries),
		GeneratedAt: at,
	}
	for _, library := range libraries {
		if library.HasCoordinates() {
			snapshot.WithCoordinates++
		}
		switch hours.ClassifyWeek(hours.WeekHours(library.Hours), at) {
		case hours.StatusOpen:
			snapshot.Open++
		case hours.StatusClosingSoon:
			snapshot.ClosingSoon++
		default:
			snapshot.Closed++
		}
	}
	return snapshot, nil
}
