package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderwise/internal/models/response_models"
)

func TestParseItemCountEqualsNonEmptyLines(t *testing.T) {
	parser := NewParserService()

	text := "Day 1: Arrival\n\n- Check in at the hotel\n\nEnjoy the evening.\n   \nMorning:\n- Breakfast nearby\n"
	items, _ := parser.Parse(text, "Paris, France")

	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("item-%d", i), item.ID)
	}
}

func TestParseClassification(t *testing.T) {
	parser := NewParserService()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "day header", line: "Day 2: Food Tour", want: response_models.ItemTypeDayHeader},
		{name: "day header no space before colon", line: "Day 10: Departure", want: response_models.ItemTypeDayHeader},
		{name: "tour header", line: "Tour: Old Town walk", want: response_models.ItemTypeDayHeader},
		{name: "morning header", line: "Morning:", want: response_models.ItemTypeDayHeader},
		{name: "afternoon header lowercase", line: "afternoon: museums", want: response_models.ItemTypeDayHeader},
		{name: "hyphen activity", line: "- Visit the park", want: response_models.ItemTypeActivity},
		{name: "star activity", line: "* Visit the park", want: response_models.ItemTypeActivity},
		{name: "numbered activity", line: "3. Visit the park", want: response_models.ItemTypeActivity},
		{name: "plain description", line: "A relaxing day in the city.", want: response_models.ItemTypeDescription},
		{name: "day without colon is description", line: "Day one is free", want: response_models.ItemTypeDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, _ := parser.Parse(tt.line, "Paris, France")
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].Type)
		})
	}
}

func TestParseActivityPrefixStripped(t *testing.T) {
	parser := NewParserService()

	for _, line := range []string{"- Visit the park", "* Visit the park", "2. Visit the park"} {
		items, _ := parser.Parse(line, "Paris, France")
		require.Len(t, items, 1)
		assert.Equal(t, "Visit the park", items[0].Content)
	}
}

func TestParseMatchesCatalogPlace(t *testing.T) {
	parser := NewParserService()

	items, pins := parser.Parse("- Visit the Louvre Museum in the morning", "Paris, France")

	require.Len(t, items, 1)
	require.NotNil(t, items[0].Mappable)
	assert.Equal(t, "Louvre Museum", items[0].Mappable.Name)
	assert.Equal(t, "https://placehold.co/300x200.png", items[0].ImageURL)

	require.Len(t, pins, 1)
	assert.Equal(t, 48.8606, pins[0].Lat)
	assert.Equal(t, 2.3376, pins[0].Lng)
}

func TestParseUnmatchedActivityHasNoEnrichment(t *testing.T) {
	parser := NewParserService()

	items, pins := parser.Parse("- Walk around", "Paris, France")

	require.Len(t, items, 1)
	assert.Nil(t, items[0].Mappable)
	assert.Empty(t, items[0].ImageURL)
	assert.Empty(t, pins)
}

func TestParseMatchingIsCaseSensitive(t *testing.T) {
	parser := NewParserService()

	items, pins := parser.Parse("- visit the louvre museum", "Paris, France")

	require.Len(t, items, 1)
	assert.Nil(t, items[0].Mappable)
	assert.Empty(t, pins)
}

func TestParseDestinationPrefixResolution(t *testing.T) {
	parser := NewParserService()

	// "Tokyo" is not an exact catalog key; the prefix rule resolves it
	// to the "Tokyo, Japan" entries.
	items, pins := parser.Parse("- Explore Senso-ji Temple at dawn", "Tokyo")

	require.Len(t, items, 1)
	require.NotNil(t, items[0].Mappable)
	require.Len(t, pins, 1)
	assert.Equal(t, "Senso-ji Temple", pins[0].Name)
}

func TestParseUnknownDestinationHasNoCandidates(t *testing.T) {
	parser := NewParserService()

	_, pins := parser.Parse("- Visit the Louvre Museum", "Berlin, Germany")
	assert.Empty(t, pins)
}

func TestParsePinsDeduplicatedByName(t *testing.T) {
	parser := NewParserService()

	text := "- Lunch near the Eiffel Tower\n- Evening lights at the Eiffel Tower"
	items, pins := parser.Parse(text, "Paris, France")

	require.Len(t, items, 2)
	require.NotNil(t, items[0].Mappable)
	require.NotNil(t, items[1].Mappable)
	assert.Len(t, pins, 1)
}

func TestParseFirstCatalogMatchWins(t *testing.T) {
	parser := NewParserService()

	// Both restaurant names appear; the scan stops at the first catalog
	// entry that matches, which is Le Procope in seed order.
	items, _ := parser.Parse("- Dinner at Le Procope then dessert at Bouillon Chartier", "Paris, France")

	require.Len(t, items, 1)
	require.NotNil(t, items[0].Mappable)
	assert.Equal(t, "Le Procope", items[0].Mappable.Name)
}

func TestParseNeverPanicsOnArbitraryText(t *testing.T) {
	parser := NewParserService()

	inputs := []string{
		"",
		"\n\n\n",
		"- ",
		"*",
		"1.",
		"Day :",
		"🌍 emoji line\n- Visit the Louvre Museum",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			parser.Parse(input, "Paris, France")
		})
	}

	items, _ := parser.Parse("", "Paris, France")
	assert.Empty(t, items)
}
