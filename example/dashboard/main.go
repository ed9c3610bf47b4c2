package main

import (
	"context"
	"fmt"
	"time"

	"weathercast/internal/domain/gateway/api"
	"weathercast/internal/domain/gateway/geo"
	"weathercast/internal/domain/usecase/session"
	"weathercast/pkg/log"

	"go.uber.org/zap"
)

// Drives one dashboard in process: default city, a search, a failed search, geolocation and the unit toggle.
// Set LOG_LEVEL=debug to see stale responses being discarded.
func main() {
	ctx := context.Background()
	sessions := session.NewSessionUseCase("London", 10, time.Hour, api.NewMockWeatherGateway(api.DefaultMockGatewayOptions()))

	created, err := sessions.Create(ctx)
	if err != nil {
		log.Fatal("Failed to create dashboard", zap.Error(err))
	}
	dashboard := created.Dashboard

	// The default lookup runs in the background, a search issued now supersedes it
	dashboard.Search(ctx, "Tokyo")
	printView("Tokyo", dashboard.View())

	dashboard.Search(ctx, "xyz")
	printView("xyz (kept Tokyo)", dashboard.View())

	dashboard.Geolocate(ctx, geo.NewReportedLocator(true, geo.Coordinates{Latitude: 35.68, Longitude: 139.69}, ""))
	printView("geolocation", dashboard.View())

	dashboard.ToggleUnit()
	printView("fahrenheit", dashboard.View())

	for _, notification := range created.Inbox.Drain() {
		fmt.Printf("notification: %s - %s\n", notification.Title, notification.Description)
	}
}

func printView(title string, view any) {
	log.Infow("Dashboard view", "step", title, "view", view)
}
