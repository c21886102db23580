package catalog

import "strings"

// Place is immutable reference data describing a known place. Coordinates
// and image are optional; a place without both coordinates can still be
// matched by name, it just cannot be pinned on a map.
type Place struct {
	ID          string
	Name        string
	Category    string
	Description string
	Lat         *float64
	Lng         *float64
	ImageURL    string
}

// DefaultDestination is the fallback key used by the suggestion lookup
// when a location cannot be resolved to any catalog destination.
const DefaultDestination = "Paris, France"

// categoryOrder fixes the iteration order over a destination's categories
// so flattened place lists are stable across calls.
var categoryOrder = []string{
	CategoryRestaurant,
	CategoryTouristAttraction,
	CategoryCafe,
}

const (
	CategoryRestaurant        = "restaurant"
	CategoryTouristAttraction = "tourist_attraction"
	CategoryCafe              = "cafe"
)

// KnownCategory reports whether placeType is one of the catalog categories.
func KnownCategory(placeType string) bool {
	switch placeType {
	case CategoryRestaurant, CategoryTouristAttraction, CategoryCafe:
		return true
	}
	return false
}

// cityName returns the portion of a destination key before the first comma.
func cityName(key string) string {
	if i := strings.Index(key, ","); i >= 0 {
		return key[:i]
	}
	return key
}

// ResolveSuggestKey maps a free-text location to a catalog destination key:
// exact case-insensitive match first, then any key whose city name appears
// in the location, then the default destination.
func ResolveSuggestKey(location string) string {
	normalized := strings.ToLower(location)
	for _, key := range destinationKeys {
		if strings.ToLower(key) == normalized {
			return key
		}
	}
	for _, key := range destinationKeys {
		if strings.Contains(normalized, strings.ToLower(cityName(key))) {
			return key
		}
	}
	return DefaultDestination
}

// ResolveParserKey maps a destination to a catalog key for activity
// matching: exact match first, then the first key whose city name the
// destination starts with. Unlike the suggestion lookup there is no
// fallback; an unknown destination yields no candidate places.
func ResolveParserKey(destination string) string {
	for _, key := range destinationKeys {
		if key == destination {
			return key
		}
	}
	lower := strings.ToLower(destination)
	for _, key := range destinationKeys {
		if strings.HasPrefix(lower, strings.ToLower(cityName(key))) {
			return key
		}
	}
	return ""
}

// PlacesFor returns the catalog entries for a destination key and category.
func PlacesFor(key, category string) []Place {
	dest, ok := destinations[key]
	if !ok {
		return nil
	}
	return dest[category]
}

// PlacesForDestination flattens every category of a destination key into a
// single slice in stable catalog order.
func PlacesForDestination(key string) []Place {
	dest, ok := destinations[key]
	if !ok {
		return nil
	}
	var places []Place
	for _, category := range categoryOrder {
		places = append(places, dest[category]...)
	}
	return places
}
