package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderwise/internal/api/controllers"
	"wanderwise/internal/repositories"
	"wanderwise/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
	provideParserService,
	controllers.NewItinerariesController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}

func provideParserService() services.ParserServiceInterface {
	return services.NewParserService()
}
