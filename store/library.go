package store

import "context"

// WeekdayCount is the number of per-weekday hour columns on a library row.
const WeekdayCount = 7

// Library is the object representing a library record. Hours holds one raw,
// human-authored day text per weekday (0=Sunday..6=Saturday); the text is
// immutable input, parsed downstream but never rewritten here.
type Library struct {
	ID        int32
	UID       string
	RowStatus RowStatus
	CreatedTs int64
	UpdatedTs int64

	Name        string
	Description string
	Address     string

	// Latitude/Longitude are nil until the record has been geocoded or
	// placed by hand.
	Latitude  *float64
	Longitude *float64

	Hours [WeekdayCount]string
}

// HasCoordinates reports whether the record has been placed on the map.
func (l *Library) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// FindLibrary is the find condition for library.
type FindLibrary struct {
	ID        *int32
	UID       *string
	RowStatus *RowStatus

	// MissingCoordinates selects records that still need geocoding.
	MissingCoordinates bool

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateLibrary is the update request for library.
type UpdateLibrary struct {
	ID          int32
	UpdatedTs   *int64
	RowStatus   *RowStatus
	Name        *string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	Hours       *[WeekdayCount]string
}

// DeleteLibrary is the delete request for library.
type DeleteLibrary struct {
	ID int32
}

// CreateLibrary creates a new library record.
func (s *Store) CreateLibrary(ctx context.Context, create *Library) (*Library, error) {
	library, err := s.driver.CreateLibrary(ctx, create)
	if err != nil {
		return nil, err
	}
	s.libraryCache.Set(library.UID, library)
	return library, nil
}

// ListLibraries lists library records with filter.
func (s *Store) ListLibraries(ctx context.Context, find *FindLibrary) ([]*Library, error) {
	return s.driver.ListLibraries(ctx, find)
}

// GetLibrary gets a single library record, consulting the record cache when
// looking up by UID.
func (s *Store) GetLibrary(ctx context.Context, find *FindLibrary) (*Library, error) {
	if find.UID != nil {
		if cached, ok := s.libraryCache.Get(*find.UID); ok {
			return cached.(*Library), nil
		}
	}

	list, err := s.driver.ListLibraries(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	library := list[0]
	s.libraryCache.Set(library.UID, library)
	return library, nil
}

// UpdateLibrary updates a library record and invalidates its cache entry.
func (s *Store) UpdateLibrary(ctx context.Context, update *UpdateLibrary) (*Library, error) {
	library, err := s.driver.UpdateLibrary(ctx, update)
	if err != nil {
		return nil, err
	}
	s.libraryCache.Set(library.UID, library)
	return library, nil
}

// DeleteLibrary deletes a library record.
func (s *Store) DeleteLibrary(ctx context.Context, delete *DeleteLibrary) error {
	library, err := s.GetLibrary(ctx, &FindLibrary{ID: &delete.ID})
	if err == nil && library != nil {
		s.libraryCache.Delete(library.UID)
	}
	return s.driver.DeleteLibrary(ctx, delete)
}
