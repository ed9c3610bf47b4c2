package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGeolocationUnsupported is returned when the client has no geolocation capability
	ErrGeolocationUnsupported = errors.New("geolocation not supported")

	// ErrLocationDenied is returned when the user refused or the device failed to resolve a position
	ErrLocationDenied = errors.New("location access denied")
)

// Coordinates is a resolved device position
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator is the client geolocation capability
type Locator interface {
	// Supported reports whether the client can resolve a position at all
	Supported() bool

	// Locate resolves the current position, or returns an error wrapping ErrLocationDenied
	Locate(ctx context.Context) (Coordinates, error)
}

// ReportedLocator replays what the client reported about its position
type ReportedLocator struct {
	supported   bool
	coordinates Coordinates
	reason      string
}

// NewReportedLocator builds a locator from a client report; a non-empty reason means the lookup was denied
func NewReportedLocator(supported bool, coordinates Coordinates, reason string) *ReportedLocator {
	return &ReportedLocator{
		supported:   supported,
		coordinates: coordinates,
		reason:      strings.TrimSpace(reason),
	}
}

func (l *ReportedLocator) Supported() bool {
	return l.supported
}

func (l *ReportedLocator) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	if !l.supported {
		return Coordinates{}, ErrGeolocationUnsupported
	}
	if l.reason != "" {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrLocationDenied, l.reason)
	}
	return l.coordinates, nil
}

var _ Locator = (*ReportedLocator)(nil)
