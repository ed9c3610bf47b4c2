package controller

import (
	"context"
	"errors"
	"net/http"

	"weathercast/internal/domain/gateway/geo"
	"weathercast/internal/domain/model"
	"weathercast/internal/domain/usecase/session"
	"weathercast/pkg/msg"
	"weathercast/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type DashboardController struct {
	api     *echo.Group
	useCase session.UseCase
}

func NewDashboardController(api *echo.Group, useCase session.UseCase) *DashboardController {
	return &DashboardController{api: api, useCase: useCase}
}

// InitDashboardRoutes initializes dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.POST("/dashboard", controller.Create)
	controller.api.GET("/dashboard", controller.FindAll)
	controller.api.GET("/dashboard/:id", controller.FindByID)
	controller.api.POST("/dashboard/:id/search", controller.Search)
	controller.api.POST("/dashboard/:id/geolocation", controller.Geolocate)
	controller.api.POST("/dashboard/:id/unit/toggle", controller.ToggleUnit)
	controller.api.PUT("/dashboard/:id/unit", controller.SetUnit)
	controller.api.GET("/dashboard/:id/notifications", controller.DrainNotifications)
	controller.api.DELETE("/dashboard/:id", controller.Remove)
}

// Create godoc
// @Summary Create a dashboard
// @Description Create a dashboard session. The default city is loaded in the background.
// @Tags dashboard
// @Produce json
// @Success 201 {object} model.DashboardView "Created dashboard"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [post]
func (controller *DashboardController) Create(c echo.Context) error {
	created, err := controller.useCase.Create(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created.Dashboard.View())
}

// FindAll godoc
// @Summary List dashboards
// @Description List dashboard sessions ordered by creation time
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[model.SessionSummary] "Paginated list of dashboards"
// @Router /dashboard [get]
func (controller *DashboardController) FindAll(c echo.Context) error {
	page := max(numberutils.ToIntWithDefault(c.QueryParam("page"), 0), 0)
	size := numberutils.ClampInt(numberutils.ToIntWithDefault(c.QueryParam("size"), defaultPageSize), 1, maxPageSize)

	return c.JSON(http.StatusOK, controller.useCase.FindAll(page, size))
}

// FindByID godoc
// @Summary Get a dashboard
// @Description Get the current view of a dashboard
// @Tags dashboard
// @Produce json
// @Param id path string true "Dashboard session id"
// @Success 200 {object} model.DashboardView "Dashboard"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id} [get]
func (controller *DashboardController) FindByID(c echo.Context) error {
	found, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, found.Dashboard.View())
}

// Search godoc
// @Summary Search weather for a city
// @Description Load current weather and forecast for a city. Lookup failures are reported as notifications.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dashboard session id"
// @Param search body model.SearchDTO true "City to search"
// @Success 200 {object} model.DashboardView "Dashboard after the search"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id}/search [post]
func (controller *DashboardController) Search(c echo.Context) error {
	found, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}

	var dto model.SearchDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("error.invalid-body")})
	}

	found.Dashboard.Search(context.WithoutCancel(c.Request().Context()), dto.City)
	return c.JSON(http.StatusOK, found.Dashboard.View())
}

// Geolocate godoc
// @Summary Load weather for the client position
// @Description Report the client geolocation result and load weather and forecast for it
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dashboard session id"
// @Param geolocation body model.GeolocationDTO true "Geolocation result"
// @Success 200 {object} model.DashboardView "Dashboard after the lookup"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id}/geolocation [post]
func (controller *DashboardController) Geolocate(c echo.Context) error {
	found, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}

	var dto model.GeolocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("error.invalid-body")})
	}

	locator := geo.NewReportedLocator(dto.Supported, geo.Coordinates{Latitude: dto.Latitude, Longitude: dto.Longitude}, dto.Error)
	found.Dashboard.Geolocate(context.WithoutCancel(c.Request().Context()), locator)
	return c.JSON(http.StatusOK, found.Dashboard.View())
}

// ToggleUnit godoc
// @Summary Toggle the display unit
// @Description Switch between celsius and fahrenheit without fetching
// @Tags dashboard
// @Produce json
// @Param id path string true "Dashboard session id"
// @Success 200 {object} model.DashboardView "Dashboard in the new unit"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id}/unit/toggle [post]
func (controller *DashboardController) ToggleUnit(c echo.Context) error {
	found, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}

	found.Dashboard.ToggleUnit()
	return c.JSON(http.StatusOK, found.Dashboard.View())
}

// SetUnit godoc
// @Summary Set the display unit
// @Description Set the display unit to celsius or fahrenheit without fetching
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dashboard session id"
// @Param unit body model.UnitDTO true "Display unit"
// @Success 200 {object} model.DashboardView "Dashboard in the new unit"
// @Failure 400 {object} map[string]string "Invalid unit"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id}/unit [put]
func (controller *DashboardController) SetUnit(c echo.Context) error {
	found, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}

	var dto model.UnitDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("error.invalid-body")})
	}

	unit, ok := model.ParseUnit(dto.Unit)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("error.invalid-unit")})
	}

	found.Dashboard.SetUnit(unit)
	return c.JSON(http.StatusOK, found.Dashboard.View())
}

// DrainNotifications godoc
// @Summary Drain notifications
// @Description Return and clear the pending notifications of a dashboard, oldest first
// @Tags dashboard
// @Produce json
// @Param id path string true "Dashboard session id"
// @Success 200 {array} model.Notification "Pending notifications"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id}/notifications [get]
func (controller *DashboardController) DrainNotifications(c echo.Context) error {
	found, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, found.Inbox.Drain())
}

// Remove godoc
// @Summary Remove a dashboard
// @Description Remove a dashboard session
// @Tags dashboard
// @Param id path string true "Dashboard session id"
// @Success 204 "Dashboard removed"
// @Failure 404 {object} map[string]string "Dashboard session not found"
// @Router /dashboard/{id} [delete]
func (controller *DashboardController) Remove(c echo.Context) error {
	if err := controller.useCase.Remove(c.Param("id")); err != nil {
		return sessionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func sessionError(c echo.Context, err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("error.session-not-found")})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
