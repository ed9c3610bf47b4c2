package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"weathercast/configs"
	"weathercast/docs"
	"weathercast/internal/application/controller"
	"weathercast/internal/application/middleware"
	"weathercast/internal/application/schedule"
	"weathercast/internal/domain/gateway/api"
	"weathercast/internal/domain/usecase/health"
	"weathercast/internal/domain/usecase/session"
	"weathercast/pkg/log"
	"weathercast/pkg/msg"
	"weathercast/pkg/resource"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title WeatherCast API
// @version 1.0
// @description Weather dashboard sessions: city search, geolocation, unit toggle and notifications.
// @BasePath /weathercast
func main() {
	defer log.Sync()

	appName := configs.Env.ApplicationName
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e, middleware.DefaultSkippedPaths...)

	contextPath := resource.GetString("app.server.context-path")
	group := e.Group(contextPath)

	// Init Gateway
	weatherGateway := newWeatherGateway()

	// Init UseCase
	sessionUseCase := session.NewSessionUseCase(
		resource.GetString("app.dashboard.default-city"),
		resource.GetInt("app.dashboard.inbox-size"),
		resource.GetDuration("app.session.max-idle"),
		weatherGateway,
	)
	healthUseCase := health.NewHealthUseCase(weatherGateway, sessionUseCase)

	// Init Controller and Routes
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewDashboardController(group, sessionUseCase).InitDashboardRoutes()

	if configs.Env.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = contextPath
		group.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(sessionUseCase, resource.GetString("app.session.prune.cron"))
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal(err.Error())
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error(), zap.String("port", port))
		}
	}()
	log.Info(msg.GetMessage("app.started", appName, port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", appName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	<-sessionScheduler.Stop().Done()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}

	log.Info(msg.GetMessage("app.stopped", appName))
}

// newWeatherGateway builds the mock provider, rate limited when app.provider.rate-limit.enabled is set
func newWeatherGateway() api.WeatherGateway {
	options := api.DefaultMockGatewayOptions()
	options.WeatherDelay = resource.GetDuration("app.provider.weather-delay")
	options.ForecastDelay = resource.GetDuration("app.provider.forecast-delay")

	gateway := api.NewMockWeatherGateway(options)
	if !resource.GetBool("app.provider.rate-limit.enabled") {
		return gateway
	}

	rps := resource.GetFloat64("app.provider.rate-limit.rps")
	burst := resource.GetInt("app.provider.rate-limit.burst")
	log.Info(msg.GetMessage("provider.rate-limited", gateway.Name(), rps, burst))

	return api.NewRateLimitedWeatherGateway(gateway, rps, burst)
}
