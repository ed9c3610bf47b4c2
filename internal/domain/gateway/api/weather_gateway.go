package api

import (
	"context"
	"errors"

	"weathercast/internal/domain/entity"
	"weathercast/internal/domain/model"
)

// ErrCityNotFound is returned when a city lookup matches no known location
var ErrCityNotFound = errors.New("city not found")

// WeatherGateway defines the weather provider used by the dashboards
type WeatherGateway interface {
	// Name returns the provider name
	Name() string

	// GetCurrentWeather returns current conditions for a city
	GetCurrentWeather(ctx context.Context, city string) (entity.Weather, error)

	// GetForecast returns the next three days for a city, tomorrow first
	GetForecast(ctx context.Context, city string) ([]entity.Forecast, error)

	// GetCurrentWeatherByCoords returns current conditions for a position
	GetCurrentWeatherByCoords(ctx context.Context, lat float64, lon float64) (entity.Weather, error)

	// GetForecastByCoords returns the next three days for a position, tomorrow first
	GetForecastByCoords(ctx context.Context, lat float64, lon float64) ([]entity.Forecast, error)

	// Health reports the provider status
	Health() model.ComponentHealthStatus
}
