package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weathercast/internal/domain/gateway/api"
	"weathercast/internal/domain/model"
	"weathercast/internal/domain/usecase/health"
	"weathercast/internal/domain/usecase/session"

	"github.com/labstack/echo/v4"
)

const basePath = "/weathercast"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	gateway := api.NewMockWeatherGateway(api.MockGatewayOptions{})
	sessions := session.NewSessionUseCase("London", 10, time.Hour, gateway)

	e := echo.New()
	group := e.Group(basePath)
	NewDashboardController(group, sessions).InitDashboardRoutes()
	NewHealthController(group, health.NewHealthUseCase(gateway, sessions)).InitHealthRoutes()
	return e
}

func doRequest(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, basePath+path, nil)
	} else {
		req = httptest.NewRequest(method, basePath+path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	if err := json.Unmarshal(rec.Body.Bytes(), &value); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
	return value
}

// createReadyDashboard creates a dashboard and waits for its default city to load
func createReadyDashboard(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/dashboard", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	id := decode[model.DashboardView](t, rec).SessionID
	if id == "" {
		t.Fatal("expected a session id")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		view := decode[model.DashboardView](t, doRequest(e, http.MethodGet, "/dashboard/"+id, ""))
		if view.Status == model.StatusReady {
			return id
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("dashboard %s never became ready", id)
	return ""
}

func TestCreateAndGetDashboard(t *testing.T) {
	e := newTestServer(t)
	id := createReadyDashboard(t, e)

	rec := doRequest(e, http.MethodGet, "/dashboard/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	view := decode[model.DashboardView](t, rec)
	if view.Weather == nil || view.Weather.City != "London" {
		t.Fatalf("expected London, got %+v", view.Weather)
	}
	if len(view.Forecast) != api.ForecastDays {
		t.Fatalf("expected %d forecast days, got %d", api.ForecastDays, len(view.Forecast))
	}
	if view.Unit != model.Celsius || view.UnitSymbol != "°C" {
		t.Fatalf("expected celsius, got %s", view.Unit)
	}
}

func TestUnknownDashboard(t *testing.T) {
	e := newTestServer(t)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/dashboard/missing", ""},
		{http.MethodPost, "/dashboard/missing/search", `{"city":"Paris"}`},
		{http.MethodPost, "/dashboard/missing/unit/toggle", ""},
		{http.MethodGet, "/dashboard/missing/notifications", ""},
		{http.MethodDelete, "/dashboard/missing", ""},
	} {
		rec := doRequest(e, tc.method, tc.path, tc.body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.path, rec.Code)
		}
		if body := decode[map[string]string](t, rec); body["error"] != "Dashboard session not found" {
			t.Fatalf("unexpected error body %+v", body)
		}
	}
}

func TestSearchDashboard(t *testing.T) {
	e := newTestServer(t)
	id := createReadyDashboard(t, e)

	rec := doRequest(e, http.MethodPost, "/dashboard/"+id+"/search", `{"city":"Paris"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if view := decode[model.DashboardView](t, rec); view.Weather.City != "Paris" || view.Loading {
		t.Fatalf("expected settled Paris view, got %+v", view)
	}

	rec = doRequest(e, http.MethodPost, "/dashboard/"+id+"/search", `{"city":"xyz"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a failed lookup, got %d", rec.Code)
	}
	view := decode[model.DashboardView](t, rec)
	if view.Weather.City != "Paris" || view.LastError == "" {
		t.Fatalf("expected Paris kept with an error, got %+v", view)
	}

	notifications := decode[[]model.Notification](t, doRequest(e, http.MethodGet, "/dashboard/"+id+"/notifications", ""))
	if len(notifications) != 1 || notifications[0].Kind != model.KindCityNotFound {
		t.Fatalf("expected a city-not-found notification, got %+v", notifications)
	}
	if notifications[0].Title != "City not found" {
		t.Fatalf("unexpected title %q", notifications[0].Title)
	}

	drained := decode[[]model.Notification](t, doRequest(e, http.MethodGet, "/dashboard/"+id+"/notifications", ""))
	if len(drained) != 0 {
		t.Fatalf("expected an empty inbox after draining, got %+v", drained)
	}
}

func TestSearchInvalidBody(t *testing.T) {
	e := newTestServer(t)
	id := createReadyDashboard(t, e)

	rec := doRequest(e, http.MethodPost, "/dashboard/"+id+"/search", `{"city":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGeolocateDashboard(t *testing.T) {
	e := newTestServer(t)
	id := createReadyDashboard(t, e)

	rec := doRequest(e, http.MethodPost, "/dashboard/"+id+"/geolocation", `{"supported":true,"latitude":51.5,"longitude":-0.12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if view := decode[model.DashboardView](t, rec); view.Weather.City != api.CoordinatesCityLabel {
		t.Fatalf("expected %q, got %s", api.CoordinatesCityLabel, view.Weather.City)
	}

	doRequest(e, http.MethodPost, "/dashboard/"+id+"/geolocation", `{"supported":false}`)
	doRequest(e, http.MethodPost, "/dashboard/"+id+"/geolocation", `{"supported":true,"error":"User denied Geolocation"}`)

	notifications := decode[[]model.Notification](t, doRequest(e, http.MethodGet, "/dashboard/"+id+"/notifications", ""))
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %+v", notifications)
	}
	if notifications[0].Kind != model.KindGeolocationUnsupported || notifications[1].Kind != model.KindLocationDenied {
		t.Fatalf("unexpected notifications %+v", notifications)
	}
}

func TestUnitRoutes(t *testing.T) {
	e := newTestServer(t)
	id := createReadyDashboard(t, e)

	before := decode[model.DashboardView](t, doRequest(e, http.MethodGet, "/dashboard/"+id, ""))

	rec := doRequest(e, http.MethodPost, "/dashboard/"+id+"/unit/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	view := decode[model.DashboardView](t, rec)
	if view.Unit != model.Fahrenheit || view.UnitSymbol != "°F" {
		t.Fatalf("expected fahrenheit, got %s", view.Unit)
	}
	if view.Weather.TemperatureCelsius != before.Weather.TemperatureCelsius {
		t.Fatal("expected the stored temperature to be unchanged")
	}
	if view.Weather.Temperature != model.ConvertTemperature(float64(before.Weather.TemperatureCelsius), model.Fahrenheit) {
		t.Fatalf("unexpected converted temperature %d", view.Weather.Temperature)
	}

	if rec := doRequest(e, http.MethodPut, "/dashboard/"+id+"/unit", `{"unit":"kelvin"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown unit, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPut, "/dashboard/"+id+"/unit", `{"unit":"celsius"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if view := decode[model.DashboardView](t, rec); view.Unit != model.Celsius {
		t.Fatalf("expected celsius, got %s", view.Unit)
	}
}

func TestListAndRemoveDashboards(t *testing.T) {
	e := newTestServer(t)
	first := createReadyDashboard(t, e)
	createReadyDashboard(t, e)

	rec := doRequest(e, http.MethodGet, "/dashboard?page=0&size=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	page := decode[model.Page[model.SessionSummary]](t, rec)
	if page.TotalElements != 2 || page.TotalPages != 2 || len(page.Content) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Content[0].ID != first || page.Content[0].City != "London" {
		t.Fatalf("expected the first dashboard, got %+v", page.Content[0])
	}

	if rec := doRequest(e, http.MethodDelete, "/dashboard/"+first, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodGet, "/dashboard/"+first, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after removal, got %d", rec.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	response := decode[model.HealthResponse](t, rec)
	if response.Status != model.StatusUp || response.Provider.Status != model.StatusUp {
		t.Fatalf("unexpected health %+v", response)
	}
}
