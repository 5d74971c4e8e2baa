package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)
	Migrate(ctx context.Context) error

	// Library model related methods.
	CreateLibrary(ctx context.Context, create *Library) (*Library, error)
	ListLibraries(ctx context.Context, find *FindLibrary) ([]*Library, error)
	UpdateLibrary(ctx context.Context, update *UpdateLibrary) (*Library, error)
	DeleteLibrary(ctx context.Context, delete *DeleteLibrary) error
}
