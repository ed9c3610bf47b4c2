package dashboard

import (
	"context"
	"time"

	"weathercast/internal/domain/entity"
	"weathercast/internal/domain/gateway/geo"
	"weathercast/internal/domain/model"
)

type UseCase interface {
	// SessionID identifies the dashboard in logs and views
	SessionID() string

	// Start registers the default city search the first time it is called and runs it in the background.
	// The channel is closed when that search settles.
	Start(ctx context.Context) <-chan struct{}

	// Init is Start followed by waiting for the default city search
	Init(ctx context.Context)

	// Search loads current weather and forecast for city. Blank cities are ignored.
	Search(ctx context.Context, city string)

	// Geolocate resolves the client position and loads weather and forecast for it
	Geolocate(ctx context.Context, locator geo.Locator)

	// ToggleUnit flips the display unit without fetching and returns the new unit
	ToggleUnit() model.Unit

	// SetUnit changes the display unit without fetching
	SetUnit(unit model.Unit)

	// State returns a copy of the stored state
	State() State

	// View returns the state with temperatures converted to the display unit
	View() model.DashboardView
}

// State is a consistent snapshot of a dashboard. Weather and Forecast are always from the same request.
type State struct {
	Status    model.RequestStatus
	Loading   bool
	Unit      model.Unit
	Weather   *entity.Weather
	Forecast  []entity.Forecast
	LastError error
	UpdatedAt time.Time
	Sequence  uint64
}
