package geo

import (
	"context"
	"errors"
	"testing"
)

func TestReportedLocatorResolves(t *testing.T) {
	locator := NewReportedLocator(true, Coordinates{Latitude: 48.85, Longitude: 2.35}, "")

	if !locator.Supported() {
		t.Fatal("expected locator to be supported")
	}
	coords, err := locator.Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 48.85 || coords.Longitude != 2.35 {
		t.Errorf("unexpected coordinates %+v", coords)
	}
}

func TestReportedLocatorDenied(t *testing.T) {
	locator := NewReportedLocator(true, Coordinates{}, " User denied Geolocation ")

	_, err := locator.Locate(context.Background())
	if !errors.Is(err, ErrLocationDenied) {
		t.Fatalf("expected ErrLocationDenied, got %v", err)
	}
	if err.Error() != "location access denied: User denied Geolocation" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestReportedLocatorUnsupported(t *testing.T) {
	locator := NewReportedLocator(false, Coordinates{}, "")

	if locator.Supported() {
		t.Fatal("expected locator to be unsupported")
	}
	if _, err := locator.Locate(context.Background()); !errors.Is(err, ErrGeolocationUnsupported) {
		t.Fatalf("expected ErrGeolocationUnsupported, got %v", err)
	}
}

func TestReportedLocatorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewReportedLocator(true, Coordinates{}, "").Locate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
