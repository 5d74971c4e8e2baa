package profile

import (
	"path/filepath"
	"testing"
)

func TestValidateNormalizesMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want string
	}{
		{"prod stays", "prod", "prod"},
		{"dev stays", "dev", "dev"},
		{"demo stays", "demo", "demo"},
		{"unknown falls back to demo", "staging", "demo"},
		{"empty falls back to demo", "", "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{Mode: tt.mode, Data: t.TempDir(), Driver: "sqlite"}
			if err := p.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if p.Mode != tt.want {
				t.Errorf("Mode = %q, want %q", p.Mode, tt.want)
			}
		})
	}
}

func TestValidateDefaultsSQLiteDSN(t *testing.T) {
	dir := t.TempDir()
	p := &Profile{Mode: "dev", Data: dir, Driver: "sqlite"}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	want := filepath.Join(dir, "librarymap_dev.db")
	if p.DSN != want {
		t.Errorf("DSN = %q, want %q", p.DSN, want)
	}
}

func TestValidateKeepsExplicitDSN(t *testing.T) {
	p := &Profile{Mode: "dev", Data: t.TempDir(), Driver: "postgres", DSN: "postgres://localhost/librarymap"}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.DSN != "postgres://localhost/librarymap" {
		t.Errorf("DSN = %q, want explicit value preserved", p.DSN)
	}
}

func TestValidateRejectsMissingDataDir(t *testing.T) {
	p := &Profile{Mode: "dev", Data: "/nonexistent/librarymap-data", Driver: "sqlite"}
	if err := p.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for missing data dir")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	p := &Profile{Version: "1.0.0"}
	p.FromEnv()

	if p.GeocodeEnabled {
		t.Error("GeocodeEnabled = true, want false by default")
	}
	if p.NominatimBaseURL != "https://nominatim.openstreetmap.org" {
		t.Errorf("NominatimBaseURL = %q", p.NominatimBaseURL)
	}
	if p.GeocodeUserAgent != "librarymap/1.0.0" {
		t.Errorf("GeocodeUserAgent = %q", p.GeocodeUserAgent)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LIBRARYMAP_GEOCODE_ENABLED", "true")
	t.Setenv("LIBRARYMAP_NOMINATIM_BASE_URL", "http://localhost:8088")

	p := &Profile{Version: "1.0.0"}
	p.FromEnv()

	if !p.GeocodeEnabled {
		t.Error("GeocodeEnabled = false, want true")
	}
	if p.NominatimBaseURL != "http://localhost:8088" {
		t.Errorf("NominatimBaseURL = %q", p.NominatimBaseURL)
	}
}
