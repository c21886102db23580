package services

import (
	"context"
	"log"
	"strings"

	"wanderwise/internal/catalog"
	"wanderwise/internal/models/response_models"
)

// maxSuggestions caps result lists to emulate real places API limits.
const maxSuggestions = 5

// PlaceServiceInterface answers place lookups for both the HTTP API and
// the generator's find_places tool. The catalog-backed implementation is
// a stand-in for a live places API client.
type PlaceServiceInterface interface {
	Suggest(ctx context.Context, location, placeType, query string) ([]response_models.Place, error)
}

type PlaceService struct{}

func NewPlaceService() PlaceServiceInterface {
	return &PlaceService{}
}

func (p *PlaceService) Suggest(ctx context.Context, location, placeType, query string) ([]response_models.Place, error) {
	key := catalog.ResolveSuggestKey(location)
	log.Printf("Place suggestions: location=%s, key=%s, type=%s, query=%s", location, key, placeType, query)

	entries := catalog.PlacesFor(key, placeType)
	if len(entries) == 0 {
		return []response_models.Place{}, nil
	}

	results := make([]response_models.Place, 0, len(entries))
	normalizedQuery := strings.ToLower(query)
	for _, place := range entries {
		if query != "" && !placeMatchesQuery(place, normalizedQuery) {
			continue
		}
		results = append(results, response_models.Place{
			ID:          place.ID,
			Name:        place.Name,
			Category:    place.Category,
			Description: place.Description,
			Lat:         place.Lat,
			Lng:         place.Lng,
			ImageURL:    place.ImageURL,
		})
		if len(results) == maxSuggestions {
			break
		}
	}

	return results, nil
}

func placeMatchesQuery(place catalog.Place, normalizedQuery string) bool {
	return strings.Contains(strings.ToLower(place.Name), normalizedQuery) ||
		strings.Contains(strings.ToLower(place.Description), normalizedQuery) ||
		strings.Contains(strings.ToLower(place.Category), normalizedQuery)
}
