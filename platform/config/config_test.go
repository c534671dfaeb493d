package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults returned error: %v", err)
	}
	if cfg.DefaultRadiusMeters != 2000 {
		t.Errorf("default radius = %d, want 2000", cfg.DefaultRadiusMeters)
	}
	if cfg.DefaultCenterLat != 16.7569 || cfg.DefaultCenterLon != -93.1292 {
		t.Errorf("default center = (%v, %v)", cfg.DefaultCenterLat, cfg.DefaultCenterLon)
	}
}

func TestLoadRejectsRadiusOutsideEnumeration(t *testing.T) {
	t.Setenv("DEFAULT_RADIUS_METERS", "1234")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a default radius outside the allowed enumeration")
	}
}

func TestLoadAcceptsEveryAllowedRadius(t *testing.T) {
	for _, radius := range []string{"500", "1000", "2000", "5000", "10000"} {
		t.Setenv("DEFAULT_RADIUS_METERS", radius)
		if _, err := Load(); err != nil {
			t.Errorf("Load rejected radius %s: %v", radius, err)
		}
	}
}

func TestLoadRejectsOutOfRangeCenter(t *testing.T) {
	t.Setenv("DEFAULT_CENTER_LAT", "95")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a latitude outside [-90, 90]")
	}
}
