package places_fx

import (
	"go.uber.org/fx"

	"wanderwise/internal/api/controllers"
	"wanderwise/internal/services"
)

var Module = fx.Provide(
	providePlaceService,
	controllers.NewPlacesController)

func providePlaceService() services.PlaceServiceInterface {
	return services.NewPlaceService()
}
