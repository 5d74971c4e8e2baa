// Package library provides the library-record service: live open/closed
// status views, record imports, and coordinate placement.
//
// Status is recomputed on every call from the supplied instant; the service
// holds no clock and caches no classification.
package library

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/opencampus/librarymap/server/hours"
	"github.com/opencampus/librarymap/server/timezone"
	"github.com/opencampus/librarymap/store"
)

// Store is the interface for store operations needed by the library service.
type Store interface {
	CreateLibrary(ctx context.Context, create *store.Library) (*store.Library, error)
	ListLibraries(ctx context.Context, find *store.FindLibrary) ([]*store.Library, error)
	GetLibrary(ctx context.Context, find *store.FindLibrary) (*store.Library, error)
	UpdateLibrary(ctx context.Context, update *store.UpdateLibrary) (*store.Library, error)
	DeleteLibrary(ctx context.Context, delete *store.DeleteLibrary) error
}

// Service exposes library views over the store.
type Service struct {
	store    Store
	markdown goldmark.Markdown
}

// NewService creates a new library service.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		markdown: goldmark.New(),
	}
}

// View is the list-level representation of a library record with its live
// status at the evaluated instant.
type View struct {
	UID         string   `json:"uid"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Status     hours.Status `json:"status"`
	TodayHours string       `json:"today_hours"`
}

// Detail is the full representation for a single record.
type Detail struct {
	View

	// DescriptionHTML is the Markdown-rendered description.
	DescriptionHTML string `json:"description_html"`

	// WeekRaw is the authored day text per weekday (0=Sunday).
	WeekRaw [store.WeekdayCount]string `json:"week_raw"`
	// WeekDetail is the multi-line display form per weekday.
	WeekDetail [store.WeekdayCount]string `json:"week_detail"`
}

// DayHours is the parsed view of one weekday's hours.
type DayHours struct {
	Raw      string          `json:"raw"`
	Compact  string          `json:"compact"`
	Detail   string          `json:"detail"`
	Sessions []hours.Session `json:"sessions"`
}

// WeekView is the parsed week of a single record, with the evaluated
// instant's day index and status.
type WeekView struct {
	UID        string                       `json:"uid"`
	Days       [store.WeekdayCount]DayHours `json:"days"`
	TodayIndex int                          `json:"today_index"`
	TodayLabel string                       `json:"today_label"`
	Status     hours.Status                 `json:"status"`
}

func (s *Service) buildView(library *store.Library, at time.Time) *View {
	week := hours.WeekHours(library.Hours)
	return &View{
		UID:         library.UID,
		Name:        library.Name,
		Description: library.Description,
		Address:     library.Address,
		Latitude:    library.Latitude,
		Longitude:   library.Longitude,
		Status:      hours.ClassifyWeek(week, at),
		TodayHours:  hours.FormatTodayLabel(week, at),
	}
}

// ListWithStatus returns all active records with their status at the given
// instant, optionally narrowed by a CEL filter expression over
// name/address/status/open/has_coordinates.
func (s *Service) ListWithStatus(ctx context.Context, at time.Time, filterExpr string) ([]*View, error) {
	var program *filterProgram
	if filterExpr != "" {
		var err error
		program, err = compileFilter(filterExpr)
		if err != nil {
			return nil, errors.Wrap(err, "invalid filter")
		}
	}

	normalStatus := store.Normal
	libraries, err := s.store.ListLibraries(ctx, &store.FindLibrary{RowStatus: &normalStatus})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list libraries")
	}

	views := make([]*View, 0, len(libraries))
	for _, library := range libraries {
		view := s.buildView(library, at)
		if program != nil {
			matched, err := program.matches(view)
			if err != nil {
				return nil, errors.Wrap(err, "failed to evaluate filter")
			}
			if !matched {
				continue
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// GetDetail returns the detail view for one record, or nil when not found.
func (s *Service) GetDetail(ctx context.Context, uid string, at time.Time) (*Detail, error) {
	library, err := s.store.GetLibrary(ctx, &store.FindLibrary{UID: &uid})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get library")
	}
	if library == nil {
		return nil, nil
	}

	detail := &Detail{
		View:    *s.buildView(library, at),
		WeekRaw: library.Hours,
	}
	for i, dayText := range library.Hours {
		detail.WeekDetail[i] = hours.FormatDetail(dayText)
	}

	var rendered bytes.Buffer
	if err := s.markdown.Convert([]byte(library.Description), &rendered); err != nil {
		// Rendering is cosmetic; fall back to the raw description.
		slog.Warn("failed to render library description", "uid", uid, "error", err)
		detail.DescriptionHTML = library.Description
	} else {
		detail.DescriptionHTML = rendered.String()
	}

	return detail, nil
}

// GetWeek returns the parsed week view for one record, or nil when not found.
func (s *Service) GetWeek(ctx context.Context, uid string, at time.Time) (*WeekView, error) {
	library, err := s.store.GetLibrary(ctx, &store.FindLibrary{UID: &uid})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get library")
	}
	if library == nil {
		return nil, nil
	}

	week := hours.WeekHours(library.Hours)
	view := &WeekView{
		UID:        library.UID,
		TodayIndex: timezone.DayIndex(at, timezone.LocationAmericaNewYork),
		TodayLabel: hours.FormatTodayLabel(week, at),
		Status:     hours.ClassifyWeek(week, at),
	}
	for i, dayText := range library.Hours {
		view.Days[i] = DayHours{
			Raw:      dayText,
			Compact:  hours.FormatCompact(dayText),
			Detail:   hours.FormatDetail(dayText),
			Sessions: hours.ExtractSessions(dayText),
		}
	}
	return view, nil
}

// UpdateCoordinates persists a record's map placement, or returns nil when
// the record does not exist.
func (s *Service) UpdateCoordinates(ctx context.Context, uid string, lat, lng float64) (*store.Library, error) {
	library, err := s.store.GetLibrary(ctx, &store.FindLibrary{UID: &uid})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get library")
	}
	if library == nil {
		return nil, nil
	}

	updated, err := s.store.UpdateLibrary(ctx, &store.UpdateLibrary{
		ID:        library.ID,
		Latitude:  &lat,
		Longitude: &lng,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update coordinates")
	}
	return updated, nil
}

// newUID mints a UID for records imported without an explicit Id.
func newUID() string {
	return shortuuid.New()
}
