package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opencampus/librarymap/store"
)

// parseAt resolves the optional at query parameter. The instant defaults to
// now; a value must be RFC 3339.
func parseAt(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("at")
	if raw == "" {
		return time.Now(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "at must be an RFC 3339 timestamp").SetInternal(err)
	}
	return at, nil
}

func (s *APIV1Service) GetHealthz(c echo.Context) error {
	return c.String(http.StatusOK, "Service ready.")
}

// GetStats reports how many libraries are open, closing soon, and closed at
// the evaluated instant.
func (s *APIV1Service) GetStats(c echo.Context) error {
	at, err := parseAt(c)
	if err != nil {
		return err
	}
	snapshot, err := s.StatsCollector.Collect(c.Request().Context(), at)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to collect stats").SetInternal(err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// ListLibraries returns all active libraries with their status at the
// evaluated instant, optionally narrowed by a filter expression.
func (s *APIV1Service) ListLibraries(c echo.Context) error {
	at, err := parseAt(c)
	if err != nil {
		return err
	}

	views, err := s.LibraryService.ListWithStatus(c.Request().Context(), at, c.QueryParam("filter"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

func (s *APIV1Service) GetLibrary(c echo.Context) error {
	at, err := parseAt(c)
	if err != nil {
		return err
	}

	detail, err := s.LibraryService.GetDetail(c.Request().Context(), c.Param("uid"), at)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get library").SetInternal(err)
	}
	if detail == nil {
		return echo.NewHTTPError(http.StatusNotFound, "library not found")
	}
	return c.JSON(http.StatusOK, detail)
}

func (s *APIV1Service) GetLibraryHours(c echo.Context) error {
	at, err := parseAt(c)
	if err != nil {
		return err
	}

	week, err := s.LibraryService.GetWeek(c.Request().Context(), c.Param("uid"), at)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get library hours").SetInternal(err)
	}
	if week == nil {
		return echo.NewHTTPError(http.StatusNotFound, "library not found")
	}
	return c.JSON(http.StatusOK, week)
}

type updateCoordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (s *APIV1Service) UpdateLibraryCoordinates(c echo.Context) error {
	var request updateCoordinatesRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if request.Lat < -90 || request.Lat > 90 || request.Lng < -180 || request.Lng > 180 {
		return echo.NewHTTPError(http.StatusBadRequest, "coordinates out of range")
	}

	updated, err := s.LibraryService.UpdateCoordinates(c.Request().Context(), c.Param("uid"), request.Lat, request.Lng)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update coordinates").SetInternal(err)
	}
	if updated == nil {
		return echo.NewHTTPError(http.StatusNotFound, "library not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// ImportLibraries ingests a CSV export from the request body.
func (s *APIV1Service) ImportLibraries(c echo.Context) error {
	if !s.importSemaphore.TryAcquire(1) {
		return echo.NewHTTPError(http.StatusConflict, "another import is in progress")
	}
	defer s.importSemaphore.Release(1)

	result, err := s.LibraryService.ImportCSV(c.Request().Context(), c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ImportLibraryCoordinates ingests a JSON object of coordinates keyed by
// library UID from the request body.
func (s *APIV1Service) ImportLibraryCoordinates(c echo.Context) error {
	if !s.importSemaphore.TryAcquire(1) {
		return echo.NewHTTPError(http.StatusConflict, "another import is in progress")
	}
	defer s.importSemaphore.Release(1)

	result, err := s.LibraryService.ImportCoordinates(c.Request().Context(), c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (s *APIV1Service) DeleteLibrary(c echo.Context) error {
	uid := c.Param("uid")
	library, err := s.Store.GetLibrary(c.Request().Context(), &store.FindLibrary{UID: &uid})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get library").SetInternal(err)
	}
	if library == nil {
		return echo.NewHTTPError(http.StatusNotFound, "library not found")
	}
	if err := s.Store.DeleteLibrary(c.Request().Context(), &store.DeleteLibrary{ID: library.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete library").SetInternal(err)
	}
	return c.NoContent(http.StatusNoContent)
}
