package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/opencampus/librarymap/internal/profile"
	"github.com/opencampus/librarymap/server/geocoder"
	apiv1 "github.com/opencampus/librarymap/server/router/api/v1"
	geocoderunner "github.com/opencampus/librarymap/server/runner/geocode"
	"github.com/opencampus/librarymap/store"
)

type Server struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
}

func NewServer(_ context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	echoServer := echo.New()
	echoServer.Debug = profile.Mode == "dev"
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(echomw.Recover())

	secret := profile.Secret
	if secret == "" {
		// Admin endpoints stay unreachable without a shared secret; a random
		// one keeps the server usable for read traffic.
		secret = uuid.New().String()
		slog.Warn("no secret configured, generated an ephemeral one; admin tokens minted elsewhere will not validate")
	}

	s := &Server{
		Secret:     secret,
		Profile:    profile,
		Store:      store,
		echoServer: echoServer,
	}

	apiV1Service := apiv1.NewAPIV1Service(secret, profile, store)
	apiV1Service.Register(echoServer)

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	if s.Profile.GeocodeEnabled {
		client := geocoder.NewClient(s.Profile.NominatimBaseURL, s.Profile.GeocodeUserAgent)
		runner := geocoderunner.NewRunner(s.Store, client)
		go runner.Run(ctx)
		slog.Info("geocode runner started", "base_url", s.Profile.NominatimBaseURL)
	}

	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server listening", "address", address, "mode", s.Profile.Mode)
	return errors.Wrap(s.echoServer.Start(address), "failed to start echo server")
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", "error", err)
	}
	slog.Info("server stopped")
}
