package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGeneratorClient implements GeneratorClientInterface using the chat
// completions API with tool calling.
type OpenAIGeneratorClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGeneratorClient(apiKey, model string) *OpenAIGeneratorClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGeneratorClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func findPlacesTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        findPlacesToolName,
			Description: "Finds real restaurants, cafes and tourist attractions near a location. Use the exact names it returns verbatim in the itinerary.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location": map[string]any{
						"type":        "string",
						"description": "The destination to search around, e.g. 'Paris, France'",
					},
					"place_type": map[string]any{
						"type":        "string",
						"enum":        []string{"restaurant", "tourist_attraction", "cafe"},
						"description": "The kind of place to look for",
					},
					"query": map[string]any{
						"type":        "string",
						"description": "Optional free-text filter, e.g. 'sushi' or 'modern art'",
					},
				},
				"required": []string{"location", "place_type"},
			},
		},
	}
}

func (c *OpenAIGeneratorClient) GenerateItineraryText(ctx context.Context, prompt string, finder PlaceFinder) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	for round := 0; round <= maxToolRounds; round++ {
		resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Tools:       []openai.Tool{findPlacesTool()},
			Temperature: 0.4,
		})
		if err != nil {
			return "", fmt.Errorf("openai API call failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no content generated by OpenAI")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			if strings.TrimSpace(msg.Content) == "" {
				return "", fmt.Errorf("no content generated by OpenAI")
			}
			return msg.Content, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			result, err := c.answerToolCall(ctxWithTimeout, call, finder)
			if err != nil {
				return "", err
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return "", fmt.Errorf("openai exceeded %d tool rounds", maxToolRounds)
}

func (c *OpenAIGeneratorClient) answerToolCall(ctx context.Context, call openai.ToolCall, finder PlaceFinder) (string, error) {
	if call.Function.Name != findPlacesToolName {
		return "", fmt.Errorf("openai requested unknown tool: %s", call.Function.Name)
	}

	var args struct {
		Location  string `json:"location"`
		PlaceType string `json:"place_type"`
		Query     string `json:"query"`
	}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		return "", fmt.Errorf("bad find_places arguments: %w", err)
	}

	log.Printf("Tool call %s: location=%s, type=%s, query=%s", call.Function.Name, args.Location, args.PlaceType, args.Query)

	places, err := finder(ctx, args.Location, args.PlaceType, args.Query)
	if err != nil {
		return "", fmt.Errorf("find_places failed: %w", err)
	}

	raw, err := json.Marshal(map[string]any{"places": places})
	if err != nil {
		return "", fmt.Errorf("marshal tool places: %w", err)
	}
	return string(raw), nil
}
