package api

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"weathercast/internal/domain/entity"
	"weathercast/internal/domain/model"
)

// CoordinatesCityLabel is the city reported for coordinate lookups
const CoordinatesCityLabel = "Your Location"

// ForecastDays is the number of entries in every forecast
const ForecastDays = 3

var (
	mockCountries            = []string{"US", "UK", "CA", "AU", "DE", "FR", "JP", "IN"}
	mockWeatherDescriptions  = []string{"Clear sky", "Few clouds", "Scattered clouds", "Broken clouds", "Shower rain", "Rain", "Thunderstorm", "Snow", "Mist"}
	mockForecastDescriptions = []string{"Clear sky", "Few clouds", "Scattered clouds", "Rain", "Thunderstorm"}
	sentinelCities           = map[string]struct{}{"xyz": {}, "invalid": {}}
)

// MockGatewayOptions configures the simulated provider.
type MockGatewayOptions struct {
	WeatherDelay  time.Duration
	ForecastDelay time.Duration
	// Rand is the random source; a randomly seeded one is used when nil
	Rand *rand.Rand
	// Now is the clock used for forecast dates; time.Now when nil
	Now func() time.Time
}

// DefaultMockGatewayOptions returns the latencies of the simulated provider.
func DefaultMockGatewayOptions() MockGatewayOptions {
	return MockGatewayOptions{
		WeatherDelay:  1000 * time.Millisecond,
		ForecastDelay: 500 * time.Millisecond,
	}
}

// mockWeatherGateway generates random but schema-valid weather data
type mockWeatherGateway struct {
	weatherDelay  time.Duration
	forecastDelay time.Duration
	now           func() time.Time

	mutex sync.Mutex
	rnd   *rand.Rand
}

// NewMockWeatherGateway creates the simulated weather provider
func NewMockWeatherGateway(opts MockGatewayOptions) WeatherGateway {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &mockWeatherGateway{
		weatherDelay:  opts.WeatherDelay,
		forecastDelay: opts.ForecastDelay,
		now:           opts.Now,
		rnd:           opts.Rand,
	}
}

func (g *mockWeatherGateway) Name() string {
	return "mock"
}

// GetCurrentWeather returns generated conditions for city, or ErrCityNotFound for a sentinel name
func (g *mockWeatherGateway) GetCurrentWeather(ctx context.Context, city string) (entity.Weather, error) {
	if err := sleep(ctx, g.weatherDelay); err != nil {
		return entity.Weather{}, err
	}

	if IsSentinelCity(city) {
		return entity.Weather{}, ErrCityNotFound
	}

	return g.generateWeather(city), nil
}

// GetForecast returns a generated forecast for city, or ErrCityNotFound for a sentinel name
func (g *mockWeatherGateway) GetForecast(ctx context.Context, city string) ([]entity.Forecast, error) {
	if err := sleep(ctx, g.forecastDelay); err != nil {
		return nil, err
	}

	if IsSentinelCity(city) {
		return nil, ErrCityNotFound
	}

	return g.generateForecast(), nil
}

// GetCurrentWeatherByCoords ignores the coordinates and never fails a lookup
func (g *mockWeatherGateway) GetCurrentWeatherByCoords(ctx context.Context, lat float64, lon float64) (entity.Weather, error) {
	if err := sleep(ctx, g.weatherDelay); err != nil {
		return entity.Weather{}, err
	}

	return g.generateWeather(CoordinatesCityLabel), nil
}

// GetForecastByCoords ignores the coordinates and never fails a lookup
func (g *mockWeatherGateway) GetForecastByCoords(ctx context.Context, lat float64, lon float64) ([]entity.Forecast, error) {
	if err := sleep(ctx, g.forecastDelay); err != nil {
		return nil, err
	}

	return g.generateForecast(), nil
}

func (g *mockWeatherGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"provider":       g.Name(),
			"weather_delay":  g.weatherDelay.String(),
			"forecast_delay": g.forecastDelay.String(),
		},
	}
}

// IsSentinelCity reports whether city is one of the names reserved to simulate a failed lookup
func IsSentinelCity(city string) bool {
	_, ok := sentinelCities[strings.ToLower(strings.TrimSpace(city))]
	return ok
}

func (g *mockWeatherGateway) generateWeather(city string) entity.Weather {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return entity.Weather{
		City:        city,
		Country:     pick(g.rnd, mockCountries),
		Temperature: draw(g.rnd, 5, 30),
		Description: pick(g.rnd, mockWeatherDescriptions),
		Humidity:    draw(g.rnd, 40, 40),
		WindSpeed:   draw(g.rnd, 5, 20),
		Icon:        entity.PlaceholderIcon,
		FeelsLike:   draw(g.rnd, 5, 30),
		Pressure:    draw(g.rnd, 1000, 100),
		Visibility:  draw(g.rnd, 5, 20),
	}
}

func (g *mockWeatherGateway) generateForecast() []entity.Forecast {
	now := g.now()

	g.mutex.Lock()
	defer g.mutex.Unlock()

	forecast := make([]entity.Forecast, 0, ForecastDays)
	for i := 1; i <= ForecastDays; i++ {
		forecast = append(forecast, entity.Forecast{
			Date: now.AddDate(0, 0, i),
			Temperature: entity.TemperatureRange{
				Min: draw(g.rnd, 5, 15),
				Max: draw(g.rnd, 20, 15),
			},
			Description: pick(g.rnd, mockForecastDescriptions),
			Icon:        entity.PlaceholderIcon,
			Humidity:    draw(g.rnd, 40, 40),
			WindSpeed:   draw(g.rnd, 5, 20),
		})
	}
	return forecast
}

// draw returns an integer in [lo, lo+span)
func draw(rnd *rand.Rand, lo int, span int) int {
	return lo + rnd.IntN(span)
}

func pick(rnd *rand.Rand, values []string) string {
	return values[rnd.IntN(len(values))]
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
