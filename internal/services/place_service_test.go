package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderwise/internal/catalog"
)

func TestSuggestFiltersByQuery(t *testing.T) {
	service := NewPlaceService()

	places, err := service.Suggest(context.Background(), "Paris, France", catalog.CategoryCafe, "literary")
	require.NoError(t, err)

	// Both Parisian cafés mention "literary", returned in catalog order.
	require.Len(t, places, 2)
	assert.Equal(t, "Café de Flore", places[0].Name)
	assert.Equal(t, "Les Deux Magots", places[1].Name)
}

func TestSuggestQueryMatchesNameAndCategory(t *testing.T) {
	service := NewPlaceService()

	byName, err := service.Suggest(context.Background(), "Tokyo, Japan", catalog.CategoryRestaurant, "ramen")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ichiran Ramen Shibuya", byName[0].Name)

	byCategory, err := service.Suggest(context.Background(), "Paris, France", catalog.CategoryTouristAttraction, "museum")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Louvre Museum", byCategory[0].Name)
}

func TestSuggestNoQueryReturnsWholeCategory(t *testing.T) {
	service := NewPlaceService()

	places, err := service.Suggest(context.Background(), "Paris, France", catalog.CategoryTouristAttraction, "")
	require.NoError(t, err)
	require.Len(t, places, 3)
	assert.Equal(t, "Eiffel Tower", places[0].Name)
}

func TestSuggestUnknownLocationFallsBack(t *testing.T) {
	service := NewPlaceService()

	places, err := service.Suggest(context.Background(), "Reykjavik, Iceland", catalog.CategoryCafe, "")
	require.NoError(t, err)

	// Falls back to the default destination rather than erroring.
	require.Len(t, places, 2)
	assert.Equal(t, "Café de Flore", places[0].Name)
}

func TestSuggestEmptyCategoryIsNotAnError(t *testing.T) {
	service := NewPlaceService()

	places, err := service.Suggest(context.Background(), "Tokyo, Japan", "spa", "")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestSuggestNoQueryMatchesIsEmptyList(t *testing.T) {
	service := NewPlaceService()

	places, err := service.Suggest(context.Background(), "Paris, France", catalog.CategoryCafe, "sushi")
	require.NoError(t, err)
	assert.Empty(t, places)
}
