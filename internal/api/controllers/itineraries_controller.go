package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/models/request_models"
	"wanderwise/internal/models/response_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type ItinerariesController struct {
	itineraryService services.ItineraryServiceInterface
	parserService    services.ParserServiceInterface
}

func NewItinerariesController(
	itineraryService services.ItineraryServiceInterface,
	parserService services.ParserServiceInterface,
) *ItinerariesController {
	return &ItinerariesController{
		itineraryService: itineraryService,
		parserService:    parserService,
	}
}

func (i *ItinerariesController) Save(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User ID is required to save an itinerary")
		return
	}

	var request request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload")
		return
	}

	id, err := i.itineraryService.SaveItinerary(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary saved successfully")
}

func (i *ItinerariesController) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User ID is required")
		return
	}

	itineraries, err := i.itineraryService.ListUserItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func (i *ItinerariesController) GetByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User ID is required")
		return
	}

	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByID(c.Request.Context(), userID, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if itinerary == nil {
		utils.HandleServiceError(c, utils.ErrItineraryNotFound)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

func (i *ItinerariesController) Parse(c *gin.Context) {
	var request request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Text and destination are required")
		return
	}

	items, pins := i.parserService.Parse(request.Text, request.Destination)

	utils.RespondSuccess(c, response_models.ParsedItinerary{
		Items: items,
		Pins:  pins,
	}, "Itinerary parsed successfully")
}
