package model

import (
	"math"
	"strings"
)

// Unit is the display temperature scale of a dashboard.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// ParseUnit accepts "celsius", "c", "fahrenheit" or "f" in any casing.
func ParseUnit(value string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "celsius", "c":
		return Celsius, true
	case "fahrenheit", "f":
		return Fahrenheit, true
	default:
		return "", false
	}
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Symbol returns the degree symbol shown next to converted values.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// ConvertTemperature maps a stored Celsius value to the rounded value displayed in unit.
// Halves round away from zero. Any unit other than Fahrenheit displays Celsius.
func ConvertTemperature(tempCelsius float64, unit Unit) int {
	if unit == Fahrenheit {
		return int(math.Round(tempCelsius*9/5 + 32))
	}
	return int(math.Round(tempCelsius))
}
