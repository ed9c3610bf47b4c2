package api

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"weathercast/internal/domain/entity"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func newFastGateway(seed uint64) WeatherGateway {
	return NewMockWeatherGateway(MockGatewayOptions{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Now:  func() time.Time { return fixedNow },
	})
}

func inRange(value, min, max int) bool {
	return value >= min && value <= max
}

func TestGetCurrentWeatherRanges(t *testing.T) {
	gateway := newFastGateway(1)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		weather, err := gateway.GetCurrentWeather(ctx, "Paris")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if weather.City != "Paris" {
			t.Fatalf("expected city Paris, got %q", weather.City)
		}
		if weather.Country == "" || weather.Description == "" {
			t.Fatalf("expected country and description, got %+v", weather)
		}
		if !inRange(weather.Temperature, 5, 35) {
			t.Fatalf("temperature out of range: %d", weather.Temperature)
		}
		if !inRange(weather.FeelsLike, 5, 35) {
			t.Fatalf("feelsLike out of range: %d", weather.FeelsLike)
		}
		if !inRange(weather.Humidity, 40, 80) {
			t.Fatalf("humidity out of range: %d", weather.Humidity)
		}
		if !inRange(weather.WindSpeed, 5, 25) {
			t.Fatalf("windSpeed out of range: %d", weather.WindSpeed)
		}
		if !inRange(weather.Pressure, 1000, 1100) {
			t.Fatalf("pressure out of range: %d", weather.Pressure)
		}
		if !inRange(weather.Visibility, 5, 25) {
			t.Fatalf("visibility out of range: %d", weather.Visibility)
		}
		if weather.Icon != "01d" {
			t.Fatalf("expected placeholder icon, got %q", weather.Icon)
		}
	}
}

func TestGetCurrentWeatherUsesFixedSets(t *testing.T) {
	gateway := newFastGateway(2)
	countries := map[string]bool{}
	descriptions := map[string]bool{}

	for i := 0; i < 1000; i++ {
		weather, err := gateway.GetCurrentWeather(context.Background(), "Lisbon")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		countries[weather.Country] = true
		descriptions[weather.Description] = true
	}

	for country := range countries {
		found := false
		for _, known := range mockCountries {
			found = found || known == country
		}
		if !found {
			t.Errorf("unexpected country %q", country)
		}
	}
	if len(countries) != len(mockCountries) {
		t.Errorf("expected all %d countries over 1000 draws, got %d", len(mockCountries), len(countries))
	}
	if len(descriptions) != len(mockWeatherDescriptions) {
		t.Errorf("expected all %d descriptions over 1000 draws, got %d", len(mockWeatherDescriptions), len(descriptions))
	}
}

func TestForecastInvariants(t *testing.T) {
	gateway := newFastGateway(3)
	ctx := context.Background()

	fetchers := map[string]func() ([]forecastEntry, error){
		"city": func() ([]forecastEntry, error) {
			return toEntries(gateway.GetForecast(ctx, "Tokyo"))
		},
		"coords": func() ([]forecastEntry, error) {
			return toEntries(gateway.GetForecastByCoords(ctx, 35.68, 139.69))
		},
	}

	for name, fetch := range fetchers {
		for i := 0; i < 500; i++ {
			entries, err := fetch()
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}
			if len(entries) != 3 {
				t.Fatalf("%s: expected 3 entries, got %d", name, len(entries))
			}
			for day, entry := range entries {
				if entry.min >= entry.max {
					t.Fatalf("%s: expected min < max, got %d >= %d", name, entry.min, entry.max)
				}
				if !inRange(entry.min, 5, 20) || !inRange(entry.max, 20, 35) {
					t.Fatalf("%s: temperatures out of range: %d..%d", name, entry.min, entry.max)
				}
				if !inRange(entry.humidity, 40, 80) || !inRange(entry.windSpeed, 5, 25) {
					t.Fatalf("%s: humidity/wind out of range: %d %d", name, entry.humidity, entry.windSpeed)
				}
				wantDate := fixedNow.AddDate(0, 0, day+1)
				if !entry.date.Equal(wantDate) {
					t.Fatalf("%s: entry %d expected date %s, got %s", name, day, wantDate, entry.date)
				}
			}
		}
	}
}

func TestSentinelCitiesFail(t *testing.T) {
	gateway := newFastGateway(4)
	ctx := context.Background()

	for _, city := range []string{"xyz", "XYZ", "xYz", "invalid", "INVALID", " Invalid ", "\txyz\n"} {
		if _, err := gateway.GetCurrentWeather(ctx, city); !errors.Is(err, ErrCityNotFound) {
			t.Errorf("GetCurrentWeather(%q): expected ErrCityNotFound, got %v", city, err)
		}
		if _, err := gateway.GetForecast(ctx, city); !errors.Is(err, ErrCityNotFound) {
			t.Errorf("GetForecast(%q): expected ErrCityNotFound, got %v", city, err)
		}
	}
}

func TestRegularCitiesNeverFail(t *testing.T) {
	gateway := newFastGateway(5)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		for _, city := range []string{"Paris", "xyzzy", "invalid city", "London"} {
			if _, err := gateway.GetCurrentWeather(ctx, city); err != nil {
				t.Fatalf("GetCurrentWeather(%q): unexpected error %v", city, err)
			}
			if _, err := gateway.GetForecast(ctx, city); err != nil {
				t.Fatalf("GetForecast(%q): unexpected error %v", city, err)
			}
		}
	}
}

func TestCoordinateLookupsNeverFail(t *testing.T) {
	gateway := newFastGateway(6)
	ctx := context.Background()

	coords := [][2]float64{{0, 0}, {-90, 180}, {90, -180}, {51.5, -0.12}, {1e9, -1e9}, {-0.0001, 0.0001}}
	for _, c := range coords {
		weather, err := gateway.GetCurrentWeatherByCoords(ctx, c[0], c[1])
		if err != nil {
			t.Fatalf("GetCurrentWeatherByCoords(%v): unexpected error %v", c, err)
		}
		if weather.City != CoordinatesCityLabel {
			t.Errorf("expected city %q, got %q", CoordinatesCityLabel, weather.City)
		}
		if _, err := gateway.GetForecastByCoords(ctx, c[0], c[1]); err != nil {
			t.Fatalf("GetForecastByCoords(%v): unexpected error %v", c, err)
		}
	}
}

func TestSeededGatewaysAreDeterministic(t *testing.T) {
	first := newFastGateway(42)
	second := newFastGateway(42)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		a, _ := first.GetCurrentWeather(ctx, "Oslo")
		b, _ := second.GetCurrentWeather(ctx, "Oslo")
		if a != b {
			t.Fatalf("expected identical weather for identical seeds, got %+v and %+v", a, b)
		}

		fa, _ := first.GetForecast(ctx, "Oslo")
		fb, _ := second.GetForecast(ctx, "Oslo")
		for day := range fa {
			if fa[day] != fb[day] {
				t.Fatalf("expected identical forecast for identical seeds, got %+v and %+v", fa[day], fb[day])
			}
		}
	}
}

func TestSimulatedDelay(t *testing.T) {
	gateway := NewMockWeatherGateway(MockGatewayOptions{
		WeatherDelay:  30 * time.Millisecond,
		ForecastDelay: 10 * time.Millisecond,
	})

	start := time.Now()
	if _, err := gateway.GetCurrentWeather(context.Background(), "Rome"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected at least 30ms delay, got %s", elapsed)
	}
}

func TestSimulatedDelayHonorsContext(t *testing.T) {
	gateway := NewMockWeatherGateway(MockGatewayOptions{
		WeatherDelay:  time.Hour,
		ForecastDelay: time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := gateway.GetForecastByCoords(ctx, 0, 0)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("expected the delay to be aborted, took %s", elapsed)
	}
}

func TestDefaultMockGatewayOptions(t *testing.T) {
	opts := DefaultMockGatewayOptions()
	if opts.WeatherDelay != time.Second || opts.ForecastDelay != 500*time.Millisecond {
		t.Errorf("unexpected defaults %+v", opts)
	}
}

type forecastEntry struct {
	date      time.Time
	min, max  int
	humidity  int
	windSpeed int
}

func toEntries(forecast []entity.Forecast, err error) ([]forecastEntry, error) {
	if err != nil {
		return nil, err
	}
	entries := make([]forecastEntry, 0, len(forecast))
	for _, f := range forecast {
		entries = append(entries, forecastEntry{
			date:      f.Date,
			min:       f.Temperature.Min,
			max:       f.Temperature.Max,
			humidity:  f.Humidity,
			windSpeed: f.WindSpeed,
		})
	}
	return entries, nil
}
