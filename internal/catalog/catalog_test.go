package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSuggestKey(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{name: "exact key", location: "Paris, France", want: "Paris, France"},
		{name: "exact key case insensitive", location: "paris, france", want: "Paris, France"},
		{name: "location containing city name", location: "I am travelling to Tokyo next month", want: "Tokyo, Japan"},
		{name: "bare city name", location: "tokyo", want: "Tokyo, Japan"},
		{name: "unknown location falls back", location: "Reykjavik, Iceland", want: DefaultDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSuggestKey(tt.location))
		})
	}
}

func TestResolveParserKey(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		want        string
	}{
		{name: "exact key", destination: "Paris, France", want: "Paris, France"},
		{name: "city prefix", destination: "Tokyo", want: "Tokyo, Japan"},
		{name: "city prefix with suffix", destination: "Tokyo and surroundings", want: "Tokyo, Japan"},
		{name: "unknown destination has no fallback", destination: "Berlin, Germany", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveParserKey(tt.destination))
		})
	}
}

func TestPlacesForDestinationOrder(t *testing.T) {
	places := PlacesForDestination("Paris, France")
	require.Len(t, places, 8)

	// Restaurants first, then attractions, then cafes, each in seed order.
	assert.Equal(t, "Le Procope", places[0].Name)
	assert.Equal(t, "Eiffel Tower", places[3].Name)
	assert.Equal(t, "Café de Flore", places[6].Name)
}

func TestPlacesForDestinationUnknownKey(t *testing.T) {
	assert.Nil(t, PlacesForDestination(""))
	assert.Nil(t, PlacesForDestination("Berlin, Germany"))
}

func TestPlacesForCategory(t *testing.T) {
	cafes := PlacesFor("Tokyo, Japan", CategoryCafe)
	require.Len(t, cafes, 1)
	assert.Equal(t, "Blue Bottle Coffee - Kiyosumi Shirakawa", cafes[0].Name)

	assert.Empty(t, PlacesFor("Tokyo, Japan", "bar"))
}
