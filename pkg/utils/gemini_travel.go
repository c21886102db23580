package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGeneratorClient implements GeneratorClientInterface using Google's
// Gemini models with function calling.
type GeminiGeneratorClient struct {
	client *genai.Client
	model  string
}

// NewGeminiGeneratorClient creates a new Gemini client
func NewGeminiGeneratorClient(apiKey, model string) (GeneratorClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGeneratorClient{
		client: client,
		model:  model,
	}, nil
}

func findPlacesDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        findPlacesToolName,
		Description: "Finds real restaurants, cafes and tourist attractions near a location. Use the exact names it returns verbatim in the itinerary.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"location": {
					Type:        genai.TypeString,
					Description: "The destination to search around, e.g. 'Paris, France'",
				},
				"place_type": {
					Type:        genai.TypeString,
					Description: "One of: restaurant, tourist_attraction, cafe",
				},
				"query": {
					Type:        genai.TypeString,
					Description: "Optional free-text filter, e.g. 'sushi' or 'modern art'",
				},
			},
			Required: []string{"location", "place_type"},
		},
	}
}

func (c *GeminiGeneratorClient) GenerateItineraryText(ctx context.Context, prompt string, finder PlaceFinder) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetTopK(20)
	m.SetMaxOutputTokens(4000)
	m.Tools = []*genai.Tool{
		{FunctionDeclarations: []*genai.FunctionDeclaration{findPlacesDeclaration()}},
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cs := m.StartChat()
	resp, err := cs.SendMessage(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	// Answer function calls until the model settles on text.
	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		var replies []genai.Part
		for _, call := range calls {
			reply, err := c.answerFunctionCall(ctxWithTimeout, call, finder)
			if err != nil {
				return "", err
			}
			replies = append(replies, reply)
		}

		resp, err = cs.SendMessage(ctxWithTimeout, replies...)
		if err != nil {
			return "", fmt.Errorf("gemini tool round failed: %w", err)
		}
	}

	if len(functionCalls(resp)) > 0 {
		return "", fmt.Errorf("gemini exceeded %d tool rounds", maxToolRounds)
	}

	content := responseText(resp)
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("no content generated by Gemini")
	}
	return content, nil
}

func (c *GeminiGeneratorClient) answerFunctionCall(ctx context.Context, call genai.FunctionCall, finder PlaceFinder) (genai.Part, error) {
	if call.Name != findPlacesToolName {
		return nil, fmt.Errorf("gemini requested unknown tool: %s", call.Name)
	}

	location, _ := call.Args["location"].(string)
	placeType, _ := call.Args["place_type"].(string)
	query, _ := call.Args["query"].(string)

	log.Printf("Tool call %s: location=%s, type=%s, query=%s", call.Name, location, placeType, query)

	places, err := finder(ctx, location, placeType, query)
	if err != nil {
		return nil, fmt.Errorf("find_places failed: %w", err)
	}

	payload, err := placesToResponseMap(places)
	if err != nil {
		return nil, err
	}

	return genai.FunctionResponse{
		Name:     call.Name,
		Response: payload,
	}, nil
}

// placesToResponseMap converts tool places into the generic map shape the
// genai SDK requires for function responses.
func placesToResponseMap(places []ToolPlace) (map[string]any, error) {
	raw, err := json.Marshal(places)
	if err != nil {
		return nil, fmt.Errorf("marshal tool places: %w", err)
	}
	var generic []any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("unmarshal tool places: %w", err)
	}
	return map[string]any{"places": generic}, nil
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return calls
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// Close closes the Gemini client
func (c *GeminiGeneratorClient) Close() error {
	return c.client.Close()
}
