package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/catalog"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

func (p *PlacesController) GetSuggestions(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}

	placeType := c.Query("type")
	if !catalog.KnownCategory(placeType) {
		utils.RespondError(c, http.StatusBadRequest, "Type must be one of restaurant, tourist_attraction, cafe")
		return
	}

	query := c.Query("query")

	places, err := p.placeService.Suggest(c.Request.Context(), location, placeType, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Place suggestions fetched successfully")
}
