package entity

import "time"

// TemperatureRange holds a day's minimum and maximum in Celsius.
type TemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Forecast is one day's projected conditions.
type Forecast struct {
	Date        time.Time        `json:"date"`
	Temperature TemperatureRange `json:"temperature"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Humidity    int              `json:"humidity"`
	WindSpeed   int              `json:"windSpeed"`
}
