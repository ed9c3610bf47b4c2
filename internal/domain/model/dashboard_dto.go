package model

import "time"

// RequestStatus is the state of a dashboard's lookups. A failed attempt settles back to
// idle or ready and is reported through the last error.
type RequestStatus string

const (
	StatusIdle    RequestStatus = "idle"
	StatusLoading RequestStatus = "loading"
	StatusReady   RequestStatus = "ready"
)

type SearchDTO struct {
	City string `json:"city"`
}

// GeolocationDTO is what the client reports after asking its device for a position.
// Supported=false means the device has no geolocation; a non-empty Error means the lookup was denied or failed.
type GeolocationDTO struct {
	Supported bool    `json:"supported"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Error     string  `json:"error,omitempty"`
}

type UnitDTO struct {
	Unit string `json:"unit"`
}

// WeatherView is the current conditions with temperatures converted to the dashboard unit
type WeatherView struct {
	City               string `json:"city"`
	Country            string `json:"country"`
	Temperature        int    `json:"temperature"`
	FeelsLike          int    `json:"feelsLike"`
	TemperatureCelsius int    `json:"temperatureCelsius"`
	FeelsLikeCelsius   int    `json:"feelsLikeCelsius"`
	Description        string `json:"description"`
	Humidity           int    `json:"humidity"`
	WindSpeed          int    `json:"windSpeed"`
	Pressure           int    `json:"pressure"`
	Visibility         int    `json:"visibility"`
	Icon               string `json:"icon"`
}

// ForecastView is one forecast day with converted temperatures and a display label
type ForecastView struct {
	Date        time.Time `json:"date"`
	Label       string    `json:"label"`
	Min         int       `json:"min"`
	Max         int       `json:"max"`
	MinCelsius  int       `json:"minCelsius"`
	MaxCelsius  int       `json:"maxCelsius"`
	Description string    `json:"description"`
	Humidity    int       `json:"humidity"`
	WindSpeed   int       `json:"windSpeed"`
	Icon        string    `json:"icon"`
}

type DashboardView struct {
	SessionID  string         `json:"sessionId"`
	Status     RequestStatus  `json:"status"`
	Loading    bool           `json:"loading"`
	Unit       Unit           `json:"unit"`
	UnitSymbol string         `json:"unitSymbol"`
	Weather    *WeatherView   `json:"weather"`
	Forecast   []ForecastView `json:"forecast"`
	LastError  string         `json:"lastError,omitempty"`
	UpdatedAt  *time.Time     `json:"updatedAt,omitempty"`
}

// SessionSummary is a dashboard session as listed by the session registry
type SessionSummary struct {
	ID             string        `json:"id"`
	City           string        `json:"city,omitempty"`
	Status         RequestStatus `json:"status"`
	Unit           Unit          `json:"unit"`
	CreatedAt      time.Time     `json:"createdAt"`
	LastActivityAt time.Time     `json:"lastActivityAt"`
}
