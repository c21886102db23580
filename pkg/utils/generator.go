package utils

import (
	"context"
	"fmt"
	"strings"
)

// ToolPlace is the wire shape of one place returned to the model through
// the find_places tool.
type ToolPlace struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// PlaceFinder answers the model's find_places tool calls during a single
// generation request.
type PlaceFinder func(ctx context.Context, location, placeType, query string) ([]ToolPlace, error)

// GeneratorClientInterface generates itinerary text from a prompt, letting
// the model invoke the place finder zero or more times along the way.
type GeneratorClientInterface interface {
	GenerateItineraryText(ctx context.Context, prompt string, finder PlaceFinder) (string, error)
}

const (
	findPlacesToolName = "find_places"

	// maxToolRounds bounds the tool loop; a model that keeps asking for
	// places past this is treated as a failed generation.
	maxToolRounds = 8
)

// NewGeneratorClient Factory function to create either an OpenAI or Gemini
// client based on config
func NewGeneratorClient(provider, apiKey, model string) (GeneratorClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGeneratorClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGeneratorClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
