package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"weathercast/internal/domain/entity"
	"weathercast/internal/domain/gateway/api"
	"weathercast/internal/domain/gateway/geo"
	"weathercast/internal/domain/gateway/notify"
	"weathercast/internal/domain/model"
	"weathercast/pkg/log"
	"weathercast/pkg/msg"
	"weathercast/pkg/util/dateutils"

	"go.uber.org/zap"
)

type dashboardUseCase struct {
	sessionID   string
	defaultCity string
	gateway     api.WeatherGateway
	notifier    notify.Notifier
	now         func() time.Time
	initOnce    sync.Once
	initDone    chan struct{}

	mutex     sync.RWMutex
	sequence  uint64
	loading   bool
	unit      model.Unit
	weather   *entity.Weather
	forecast  []entity.Forecast
	lastError error
	updatedAt time.Time
}

func NewDashboardUseCase(sessionID string, defaultCity string, gateway api.WeatherGateway, notifier notify.Notifier) UseCase {
	return &dashboardUseCase{
		sessionID:   sessionID,
		defaultCity: defaultCity,
		gateway:     gateway,
		notifier:    notifier,
		now:         time.Now,
		unit:        model.Celsius,
	}
}

func (uc *dashboardUseCase) SessionID() string {
	return uc.sessionID
}

// Start registers the default city search once and runs it in the background.
// The returned channel is closed when that search settles.
func (uc *dashboardUseCase) Start(ctx context.Context) <-chan struct{} {
	uc.initOnce.Do(func() {
		uc.initDone = make(chan struct{})

		city := strings.TrimSpace(uc.defaultCity)
		if city == "" {
			close(uc.initDone)
			return
		}

		log.Info(msg.GetMessage("dashboard.init", city), zap.String("session_id", uc.sessionID))
		sequence := uc.begin()
		go func() {
			defer close(uc.initDone)
			uc.search(ctx, city, sequence)
		}()
	})
	return uc.initDone
}

// Init runs the default city search once and waits for it
func (uc *dashboardUseCase) Init(ctx context.Context) {
	<-uc.Start(ctx)
}

// Search loads current weather and forecast for city in parallel
func (uc *dashboardUseCase) Search(ctx context.Context, city string) {
	city = strings.TrimSpace(city)
	if city == "" {
		log.Debug(msg.GetMessage("dashboard.search.ignored"), zap.String("session_id", uc.sessionID))
		return
	}

	uc.search(ctx, city, uc.begin())
}

func (uc *dashboardUseCase) search(ctx context.Context, city string, sequence uint64) {
	log.Info(msg.GetMessage("dashboard.search.start", city, sequence), uc.fields(sequence)...)

	weather, forecast, err := uc.fetchInParallel(ctx,
		func(ctx context.Context) (entity.Weather, error) {
			return uc.gateway.GetCurrentWeather(ctx, city)
		},
		func(ctx context.Context) ([]entity.Forecast, error) {
			return uc.gateway.GetForecast(ctx, city)
		},
	)
	if err != nil {
		if uc.fail(sequence, err, model.KindCityNotFound) {
			log.Warn(msg.GetMessage("dashboard.search.failed", city, sequence, err.Error()), uc.fields(sequence, zap.Error(err))...)
		}
		return
	}

	if uc.succeed(sequence, weather, forecast) {
		log.Info(msg.GetMessage("dashboard.search.success", city, sequence), uc.fields(sequence)...)
	}
}

// Geolocate resolves the client position, then loads weather and forecast for its coordinates
func (uc *dashboardUseCase) Geolocate(ctx context.Context, locator geo.Locator) {
	if locator == nil || !locator.Supported() {
		log.Warn(msg.GetMessage("dashboard.geolocation.unsupported"), zap.String("session_id", uc.sessionID))
		uc.notify(model.KindGeolocationUnsupported)
		return
	}

	sequence := uc.begin()

	coordinates, err := locator.Locate(ctx)
	if err != nil {
		if uc.fail(sequence, err, model.KindLocationDenied) {
			log.Warn(msg.GetMessage("dashboard.geolocation.denied", sequence, err.Error()), uc.fields(sequence)...)
		}
		return
	}

	lat, lon := coordinates.Latitude, coordinates.Longitude
	log.Info(msg.GetMessage("dashboard.geolocation.start", lat, lon, sequence), uc.fields(sequence)...)

	weather, forecast, err := uc.fetchInParallel(ctx,
		func(ctx context.Context) (entity.Weather, error) {
			return uc.gateway.GetCurrentWeatherByCoords(ctx, lat, lon)
		},
		func(ctx context.Context) ([]entity.Forecast, error) {
			return uc.gateway.GetForecastByCoords(ctx, lat, lon)
		},
	)
	if err != nil {
		if uc.fail(sequence, err, model.KindLocationFetchFailed) {
			log.Warn(msg.GetMessage("dashboard.geolocation.failed", lat, lon, sequence, err.Error()), uc.fields(sequence, zap.Error(err))...)
		}
		return
	}

	if uc.succeed(sequence, weather, forecast) {
		log.Info(msg.GetMessage("dashboard.geolocation.success", lat, lon, sequence), uc.fields(sequence)...)
	}
}

// fetchInParallel runs both lookups concurrently and fails if either fails.
// The weather error is reported when both fail.
func (uc *dashboardUseCase) fetchInParallel(
	ctx context.Context,
	fetchWeather func(context.Context) (entity.Weather, error),
	fetchForecast func(context.Context) ([]entity.Forecast, error),
) (entity.Weather, []entity.Forecast, error) {
	var wg sync.WaitGroup
	var weather entity.Weather
	var forecast []entity.Forecast
	var weatherErr, forecastErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather, weatherErr = fetchWeather(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		forecast, forecastErr = fetchForecast(ctx)
	}()

	wg.Wait()

	if weatherErr != nil {
		return entity.Weather{}, nil, fmt.Errorf("failed to get current weather: %w", weatherErr)
	}
	if forecastErr != nil {
		return entity.Weather{}, nil, fmt.Errorf("failed to get forecast: %w", forecastErr)
	}

	return weather, forecast, nil
}

// begin issues a new request number and marks the dashboard as loading
func (uc *dashboardUseCase) begin() uint64 {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	uc.sequence++
	uc.loading = true
	return uc.sequence
}

// succeed stores the result of request sequence unless a newer request was issued
func (uc *dashboardUseCase) succeed(sequence uint64, weather entity.Weather, forecast []entity.Forecast) bool {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if sequence != uc.sequence {
		uc.logStale(sequence, uc.sequence)
		return false
	}

	uc.weather = &weather
	uc.forecast = append([]entity.Forecast(nil), forecast...)
	uc.loading = false
	uc.lastError = nil
	uc.updatedAt = uc.now()
	return true
}

// fail records the error of request sequence and notifies kind, keeping the previous data.
// Failures of superseded requests are dropped without a notification.
func (uc *dashboardUseCase) fail(sequence uint64, err error, kind model.NotificationKind) bool {
	uc.mutex.Lock()
	if sequence != uc.sequence {
		uc.logStale(sequence, uc.sequence)
		uc.mutex.Unlock()
		return false
	}
	uc.loading = false
	uc.lastError = err
	uc.mutex.Unlock()

	uc.notify(kind)
	return true
}

func (uc *dashboardUseCase) logStale(sequence, latest uint64) {
	log.Debug(msg.GetMessage("dashboard.stale", sequence, latest), uc.fields(sequence)...)
}

func (uc *dashboardUseCase) notify(kind model.NotificationKind) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(notify.NewNotification(kind, uc.now()))
}

func (uc *dashboardUseCase) fields(sequence uint64, extra ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("session_id", uc.sessionID),
		zap.Uint64("sequence", sequence),
	}, extra...)
}

// ToggleUnit flips the display unit. Stored values are untouched.
func (uc *dashboardUseCase) ToggleUnit() model.Unit {
	uc.mutex.Lock()
	uc.unit = uc.unit.Toggle()
	unit := uc.unit
	uc.mutex.Unlock()

	log.Info(msg.GetMessage("dashboard.unit-changed", string(unit)), zap.String("session_id", uc.sessionID))
	return unit
}

func (uc *dashboardUseCase) SetUnit(unit model.Unit) {
	uc.mutex.Lock()
	uc.unit = unit
	uc.mutex.Unlock()

	log.Info(msg.GetMessage("dashboard.unit-changed", string(unit)), zap.String("session_id", uc.sessionID))
}

// State returns a copy of the stored state
func (uc *dashboardUseCase) State() State {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()

	state := State{
		Status:    uc.status(),
		Loading:   uc.loading,
		Unit:      uc.unit,
		LastError: uc.lastError,
		UpdatedAt: uc.updatedAt,
		Sequence:  uc.sequence,
		Forecast:  append([]entity.Forecast(nil), uc.forecast...),
	}
	if uc.weather != nil {
		weather := *uc.weather
		state.Weather = &weather
	}
	return state
}

func (uc *dashboardUseCase) status() model.RequestStatus {
	switch {
	case uc.loading:
		return model.StatusLoading
	case uc.weather != nil:
		return model.StatusReady
	default:
		return model.StatusIdle
	}
}

// View converts the stored Celsius values to the display unit
func (uc *dashboardUseCase) View() model.DashboardView {
	state := uc.State()

	view := model.DashboardView{
		SessionID:  uc.sessionID,
		Status:     state.Status,
		Loading:    state.Loading,
		Unit:       state.Unit,
		UnitSymbol: state.Unit.Symbol(),
		Forecast:   make([]model.ForecastView, 0, len(state.Forecast)),
	}
	if state.LastError != nil {
		view.LastError = state.LastError.Error()
	}
	if !state.UpdatedAt.IsZero() {
		updatedAt := state.UpdatedAt
		view.UpdatedAt = &updatedAt
	}

	if state.Weather != nil {
		view.Weather = toWeatherView(*state.Weather, state.Unit)
	}
	for _, day := range state.Forecast {
		view.Forecast = append(view.Forecast, toForecastView(day, state.Unit))
	}

	return view
}

func toWeatherView(weather entity.Weather, unit model.Unit) *model.WeatherView {
	return &model.WeatherView{
		City:               weather.City,
		Country:            weather.Country,
		Temperature:        model.ConvertTemperature(float64(weather.Temperature), unit),
		FeelsLike:          model.ConvertTemperature(float64(weather.FeelsLike), unit),
		TemperatureCelsius: weather.Temperature,
		FeelsLikeCelsius:   weather.FeelsLike,
		Description:        weather.Description,
		Humidity:           weather.Humidity,
		WindSpeed:          weather.WindSpeed,
		Pressure:           weather.Pressure,
		Visibility:         weather.Visibility,
		Icon:               weather.Icon,
	}
}

func toForecastView(day entity.Forecast, unit model.Unit) model.ForecastView {
	return model.ForecastView{
		Date:        day.Date,
		Label:       dateutils.FormatDayLabel(day.Date),
		Min:         model.ConvertTemperature(float64(day.Temperature.Min), unit),
		Max:         model.ConvertTemperature(float64(day.Temperature.Max), unit),
		MinCelsius:  day.Temperature.Min,
		MaxCelsius:  day.Temperature.Max,
		Description: day.Description,
		Humidity:    day.Humidity,
		WindSpeed:   day.WindSpeed,
		Icon:        day.Icon,
	}
}
