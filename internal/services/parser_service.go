package services

import (
	"fmt"
	"regexp"
	"strings"

	"wanderwise/internal/catalog"
	"wanderwise/internal/models/response_models"
)

// ParserServiceInterface turns generated itinerary text into classified
// display items plus map-pin data. Parsing never fails; lines that fit no
// pattern fall back to plain descriptions.
type ParserServiceInterface interface {
	Parse(text, destination string) ([]response_models.ParsedItineraryItem, []response_models.MappableActivity)
}

var (
	headerPattern       = regexp.MustCompile(`(?i)^(Day \d+\s?:|Tour:|Morning:|Afternoon:|Evening:)`)
	numberedLinePattern = regexp.MustCompile(`^\d+\.\s`)
	activityPrefix      = regexp.MustCompile(`^(-\s?|\*\s?|\d+\.\s)`)
)

type ParserService struct{}

func NewParserService() ParserServiceInterface {
	return &ParserService{}
}

func (p *ParserService) Parse(text, destination string) ([]response_models.ParsedItineraryItem, []response_models.MappableActivity) {
	items := []response_models.ParsedItineraryItem{}
	pins := []response_models.MappableActivity{}

	candidates := catalog.PlacesForDestination(catalog.ResolveParserKey(destination))

	index := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		// Item identity is the line's position among non-empty lines;
		// editing the source text invalidates every derived id.
		itemID := fmt.Sprintf("item-%d", index)
		index++

		switch {
		case headerPattern.MatchString(line):
			items = append(items, response_models.ParsedItineraryItem{
				ID:      itemID,
				Type:    response_models.ItemTypeDayHeader,
				Content: line,
			})
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || numberedLinePattern.MatchString(line):
			content := strings.TrimSpace(activityPrefix.ReplaceAllString(line, ""))
			item := response_models.ParsedItineraryItem{
				ID:      itemID,
				Type:    response_models.ItemTypeActivity,
				Content: content,
			}
			matchActivity(&item, itemID, content, candidates, &pins)
			items = append(items, item)
		default:
			items = append(items, response_models.ParsedItineraryItem{
				ID:      itemID,
				Type:    response_models.ItemTypeDescription,
				Content: line,
			})
		}
	}

	return items, pins
}

// matchActivity scans candidate places in catalog order and stops at the
// first whose name is a literal substring of the activity content. The
// match is unanchored and case-sensitive, so a shorter catalog name that
// happens to appear inside a longer true match (or unrelated text) wins
// over a later, better one. Known heuristic limitation, kept as-is.
func matchActivity(item *response_models.ParsedItineraryItem, itemID, content string, candidates []catalog.Place, pins *[]response_models.MappableActivity) {
	for _, place := range candidates {
		if !strings.Contains(content, place.Name) {
			continue
		}
		item.ImageURL = place.ImageURL
		if place.Lat != nil && place.Lng != nil {
			mappable := response_models.MappableActivity{
				ID:       itemID,
				Name:     place.Name,
				Lat:      *place.Lat,
				Lng:      *place.Lng,
				ImageURL: place.ImageURL,
			}
			item.Mappable = &mappable
			if !pinExists(*pins, place.Name) {
				*pins = append(*pins, mappable)
			}
		}
		// First substring hit ends the scan even without coordinates;
		// the item keeps the image but gets no pin.
		return
	}
}

func pinExists(pins []response_models.MappableActivity, name string) bool {
	for _, pin := range pins {
		if pin.Name == name {
			return true
		}
	}
	return false
}
