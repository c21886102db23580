package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wanderwise/internal/models/request_models"
	"wanderwise/internal/models/response_models"
	"wanderwise/pkg/utils"
)

// GenerationServiceInterface produces a day-structured plain-text itinerary
// for a trip request. Single best-effort call: any model failure or empty
// output is a hard error, there is no retry or partial result.
type GenerationServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest) (string, error)
}

type GenerationService struct {
	generator    utils.GeneratorClientInterface
	placeService PlaceServiceInterface
}

func NewGenerationService(generator utils.GeneratorClientInterface, placeService PlaceServiceInterface) GenerationServiceInterface {
	return &GenerationService{
		generator:    generator,
		placeService: placeService,
	}
}

func (g *GenerationService) GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest) (string, error) {
	if strings.TrimSpace(request.Destination) == "" {
		return "", utils.ErrInvalidInput
	}

	prompt := buildItineraryPrompt(request)

	text, err := g.generator.GenerateItineraryText(ctx, prompt, g.findPlaces)
	if err != nil {
		log.Printf("Itinerary generation failed: %v", err)
		return "", utils.ErrUnexpectedBehaviorOfAI
	}
	if strings.TrimSpace(text) == "" {
		return "", utils.ErrUnexpectedBehaviorOfAI
	}

	return text, nil
}

// findPlaces bridges the generator's tool calls onto the suggestion
// service.
func (g *GenerationService) findPlaces(ctx context.Context, location, placeType, query string) ([]utils.ToolPlace, error) {
	places, err := g.placeService.Suggest(ctx, location, placeType, query)
	if err != nil {
		return nil, err
	}
	return toToolPlaces(places), nil
}

func toToolPlaces(places []response_models.Place) []utils.ToolPlace {
	toolPlaces := make([]utils.ToolPlace, 0, len(places))
	for _, place := range places {
		toolPlaces = append(toolPlaces, utils.ToolPlace{
			Name:        place.Name,
			Category:    place.Category,
			Description: place.Description,
			Lat:         place.Lat,
			Lng:         place.Lng,
		})
	}
	return toolPlaces
}

func buildItineraryPrompt(request request_models.GenerateItineraryRequest) string {
	var prompt strings.Builder

	prompt.WriteString("You are a travel expert. Generate a multi-day travel itinerary based on the following information:\n\n")
	fmt.Fprintf(&prompt, "Destination: %s\n", request.Destination)
	fmt.Fprintf(&prompt, "Start Date: %s\n", request.StartDate)
	fmt.Fprintf(&prompt, "End Date: %s\n", request.EndDate)
	fmt.Fprintf(&prompt, "Number of People: %d\n", request.NumberOfPeople)
	fmt.Fprintf(&prompt, "Budget: %.2f USD\n", request.Budget)
	fmt.Fprintf(&prompt, "User Preferences: %s\n\n", request.Preferences)

	prompt.WriteString("The itinerary should include diverse activity suggestions and daily schedules.\n")
	prompt.WriteString("Use the 'find_places' tool to find specific restaurants, cafes, and tourist attractions for the itinerary. ")
	prompt.WriteString("When suggesting a meal or an activity, try to use the tool to find a real place. ")
	prompt.WriteString("When you include a place found by the tool, use its EXACT name as returned by the tool so it can be linked to map data later. Do NOT rephrase or shorten the name.\n\n")

	prompt.WriteString("Format the output as a plain text string.\n")
	prompt.WriteString("Each day should start with a line like \"Day X: [Date - optional description]\".\n")
	prompt.WriteString("Activities for each day should be listed on new lines, each starting with a hyphen.\n")
	prompt.WriteString("You can include sub-headings like \"Morning:\", \"Afternoon:\", \"Evening:\" on their own lines before groups of activities.\n")
	prompt.WriteString("Provide brief descriptions for activities where appropriate, on the same line as the activity.\n")
	prompt.WriteString("Ensure the output is a single string following this text-based format. Do not output JSON.\n")

	return prompt.String()
}
