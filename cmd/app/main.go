package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderwise/cmd/fx/account_fx"
	"wanderwise/cmd/fx/db_fx"
	"wanderwise/cmd/fx/itinerary_fx"
	"wanderwise/cmd/fx/places_fx"
	"wanderwise/cmd/fx/planner_fx"
	"wanderwise/internal/api/controllers"
	"wanderwise/internal/infra"
	"wanderwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		places_fx.Module,
		itinerary_fx.Module,
		planner_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountsController *controllers.AccountsController,
	placesController *controllers.PlacesController,
	itinerariesController *controllers.ItinerariesController,
	plannerController *controllers.PlannerController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountsController, placesController, itinerariesController, plannerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountsController *controllers.AccountsController,
	placesController *controllers.PlacesController,
	itinerariesController *controllers.ItinerariesController,
	plannerController *controllers.PlannerController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountsController.Register)
	accountsGroup.POST("/login", accountsController.Login)

	placesGroup := r.Group("/places")
	placesGroup.GET("/suggestions", placesController.GetSuggestions)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/parse", itinerariesController.Parse)
	itinerariesGroup.Use(middleware.JWTAuthMiddleware())
	itinerariesGroup.POST("", itinerariesController.Save)
	itinerariesGroup.GET("", itinerariesController.ListMine)
	itinerariesGroup.GET("/:id", itinerariesController.GetByID)
	itinerariesGroup.POST("/generate", plannerController.Generate)

	viewStateGroup := r.Group("/viewstate")
	viewStateGroup.Use(middleware.JWTAuthMiddleware())
	viewStateGroup.GET("", plannerController.GetViewState)
	viewStateGroup.DELETE("", plannerController.ClearViewState)
}
