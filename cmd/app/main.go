package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	controllersfx "tripdesk/cmd/fx/controllers_fx"
	dbfx "tripdesk/cmd/fx/db_fx"
	leadsfx "tripdesk/cmd/fx/leads_fx"
	placesfx "tripdesk/cmd/fx/places_fx"
	routingfx "tripdesk/cmd/fx/routing_fx"
	schedulefx "tripdesk/cmd/fx/schedule_fx"
	settingsfx "tripdesk/cmd/fx/settings_fx"
	tripsfx "tripdesk/cmd/fx/trips_fx"
	"tripdesk/internal/api/controllers"
	"tripdesk/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		tripsfx.Module,
		leadsfx.Module,
		settingsfx.Module,
		routingfx.Module,
		schedulefx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	placesController *controllers.PlacesController,
	tripsController *controllers.TripsController,
	leadsController *controllers.LeadsController,
	settingsController *controllers.SettingsController,
	routingController *controllers.RoutingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, placesController, tripsController, leadsController, settingsController, routingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	tripsController *controllers.TripsController,
	leadsController *controllers.LeadsController,
	settingsController *controllers.SettingsController,
	routingController *controllers.RoutingController) {

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.ListPlaces)
	placesGroup.POST("", placesController.CreatePlace)
	placesGroup.GET("/:id", placesController.GetPlaceByID)
	placesGroup.PUT("/:id", placesController.UpdatePlace)
	placesGroup.DELETE("/:id", placesController.DeletePlace)
	placesGroup.GET("/:id/closures", placesController.ListClosures)
	placesGroup.POST("/:id/closures", placesController.CreateClosure)
	placesGroup.DELETE("/:id/closures/:closureId", placesController.DeleteClosure)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.POST("", tripsController.CreateTrip)
	tripsGroup.GET("/:id", tripsController.GetTripByID)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)
	tripsGroup.POST("/:id/days", tripsController.AddDay)

	daysGroup := r.Group("/days")
	daysGroup.POST("/:dayId/stops", tripsController.AddStop)
	daysGroup.DELETE("/:dayId/stops/:stopId", tripsController.RemoveStop)
	daysGroup.GET("/:dayId/schedule/preview", tripsController.PreviewDaySchedule)
	daysGroup.POST("/:dayId/schedule", tripsController.SaveDaySchedule)

	leadsGroup := r.Group("/leads")
	leadsGroup.GET("", leadsController.ListLeads)
	leadsGroup.POST("", leadsController.CreateLead)
	leadsGroup.GET("/:id", leadsController.GetLeadByID)
	leadsGroup.PUT("/:id", leadsController.UpdateLead)
	leadsGroup.DELETE("/:id", leadsController.DeleteLead)

	settingsGroup := r.Group("/settings")
	settingsGroup.GET("", settingsController.ListSettings)
	settingsGroup.PUT("/:key", settingsController.UpdateSetting)

	routingGroup := r.Group("/routing")
	routingGroup.POST("/estimate", routingController.EstimateRoute)
	routingGroup.POST("/validate-stop", routingController.ValidateStop)
}
