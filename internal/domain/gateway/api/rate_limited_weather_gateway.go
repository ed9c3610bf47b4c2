package api

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/time/rate"

	"weathercast/internal/domain/entity"
	"weathercast/internal/domain/model"
)

// rateLimitedWeatherGateway wraps a WeatherGateway with a token bucket shared by all operations
type rateLimitedWeatherGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedWeatherGateway limits gateway to rps requests per second with the given burst.
// rps can be fractional for less than one request per second.
func NewRateLimitedWeatherGateway(gateway WeatherGateway, rps float64, burst int) WeatherGateway {
	return &rateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", gateway.Name()),
	}
}

func (r *rateLimitedWeatherGateway) Name() string {
	return r.name
}

func (r *rateLimitedWeatherGateway) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}

func (r *rateLimitedWeatherGateway) GetCurrentWeather(ctx context.Context, city string) (entity.Weather, error) {
	if err := r.wait(ctx); err != nil {
		return entity.Weather{}, err
	}
	return r.gateway.GetCurrentWeather(ctx, city)
}

func (r *rateLimitedWeatherGateway) GetForecast(ctx context.Context, city string) ([]entity.Forecast, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.gateway.GetForecast(ctx, city)
}

func (r *rateLimitedWeatherGateway) GetCurrentWeatherByCoords(ctx context.Context, lat float64, lon float64) (entity.Weather, error) {
	if err := r.wait(ctx); err != nil {
		return entity.Weather{}, err
	}
	return r.gateway.GetCurrentWeatherByCoords(ctx, lat, lon)
}

func (r *rateLimitedWeatherGateway) GetForecastByCoords(ctx context.Context, lat float64, lon float64) ([]entity.Forecast, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.gateway.GetForecastByCoords(ctx, lat, lon)
}

func (r *rateLimitedWeatherGateway) Health() model.ComponentHealthStatus {
	health := r.gateway.Health()

	details := make(map[string]string, len(health.Details)+2)
	for key, value := range health.Details {
		details[key] = value
	}
	details["rate_limit_rps"] = strconv.FormatFloat(float64(r.limiter.Limit()), 'f', -1, 64)
	details["rate_limit_burst"] = strconv.Itoa(r.limiter.Burst())

	return model.ComponentHealthStatus{Status: health.Status, Details: details}
}

// Verify that the wrappers implement WeatherGateway
var (
	_ WeatherGateway = (*rateLimitedWeatherGateway)(nil)
	_ WeatherGateway = (*mockWeatherGateway)(nil)
)
