// Package v1 exposes the REST API for library records and their live
// open/closed status.
package v1

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/opencampus/librarymap/internal/profile"
	"github.com/opencampus/librarymap/server/middleware"
	"github.com/opencampus/librarymap/server/service/library"
	"github.com/opencampus/librarymap/server/stats"
	"github.com/opencampus/librarymap/store"
)

type APIV1Service struct {
	Secret         string
	Profile        *profile.Profile
	Store          *store.Store
	LibraryService *library.Service
	StatsCollector *stats.Collector

	// importSemaphore serializes bulk imports so concurrent uploads cannot
	// interleave upserts of the same records.
	importSemaphore *semaphore.Weighted
	rateLimiter     *middleware.RateLimiter
}

func NewAPIV1Service(secret string, profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Secret:          secret,
		Profile:         profile,
		Store:           store,
		LibraryService:  library.NewService(store),
		StatsCollector:  stats.NewCollector(store),
		importSemaphore: semaphore.NewWeighted(1),
		rateLimiter:     middleware.NewRateLimiter(time.Second/10, 20),
	}
}

// Register mounts all v1 routes on the given Echo instance.
func (s *APIV1Service) Register(echoServer *echo.Echo) {
	echoServer.Use(middleware.RequestLogger())
	echoServer.GET("/healthz", s.GetHealthz)

	group := echoServer.Group("/api/v1")
	group.Use(echomw.CORS())
	group.Use(middleware.RateLimitByIP(s.rateLimiter))

	group.GET("/stats", s.GetStats)
	group.GET("/libraries", s.ListLibraries)
	group.GET("/libraries/:uid", s.GetLibrary)
	group.GET("/libraries/:uid/hours", s.GetLibraryHours)

	admin := group.Group("", adminOnly(s.Secret))
	admin.PATCH("/libraries/:uid/coordinates", s.UpdateLibraryCoordinates)
	admin.POST("/libraries/import", s.ImportLibraries)
	admin.POST("/libraries/coordinates/import", s.ImportLibraryCoordinates)
	admin.DELETE("/libraries/:uid", s.DeleteLibrary)
}
