package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/models/request_models"
	"wanderwise/internal/models/response_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
	"wanderwise/pkg/viewstate"
)

// PlannerController drives itinerary generation and the per-session
// display slot that mirrors what the client is currently showing.
type PlannerController struct {
	generationService services.GenerationServiceInterface
	viewStore         viewstate.Store
}

func NewPlannerController(
	generationService services.GenerationServiceInterface,
	viewStore viewstate.Store,
) *PlannerController {
	return &PlannerController{
		generationService: generationService,
		viewStore:         viewStore,
	}
}

func (p *PlannerController) Generate(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User ID is required")
		return
	}

	var request request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip request payload")
		return
	}

	p.viewStore.SetLoading(userID)

	text, err := p.generationService.GenerateItinerary(c.Request.Context(), request)
	if err != nil {
		p.viewStore.SetError(userID, "We encountered an error while generating your itinerary.")
		utils.HandleServiceError(c, err)
		return
	}

	p.viewStore.SetData(userID, viewstate.ItineraryView{
		ItineraryText:  text,
		Destination:    request.Destination,
		Budget:         request.Budget,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		NumberOfPeople: request.NumberOfPeople,
		Preferences:    request.Preferences,
	})

	utils.RespondSuccess(c, response_models.GeneratedItinerary{ItineraryText: text}, "Itinerary generated successfully")
}

func (p *PlannerController) GetViewState(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User ID is required")
		return
	}

	state, ok := p.viewStore.Get(userID)
	if !ok {
		utils.RespondSuccess(c, viewstate.State{}, "No itinerary is currently displayed")
		return
	}

	utils.RespondSuccess(c, state, "View state fetched successfully")
}

func (p *PlannerController) ClearViewState(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User ID is required")
		return
	}

	p.viewStore.Clear(userID)
	utils.RespondSuccess(c, nil, "View state cleared")
}
