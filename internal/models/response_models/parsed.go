package response_models

const (
	ItemTypeDayHeader   = "day_header"
	ItemTypeActivity    = "activity"
	ItemTypeDescription = "description"
)

// ParsedItineraryItem is one classified line of generated itinerary text.
// Its ID is the line's position in the source text, so editing or
// reordering the text invalidates every derived id.
type ParsedItineraryItem struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Content  string            `json:"content"`
	Mappable *MappableActivity `json:"mappable,omitempty"`
	ImageURL string            `json:"image_url,omitempty"`
}

// MappableActivity is a matched place reduced to what a map pin needs.
type MappableActivity struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	ImageURL string  `json:"image_url,omitempty"`
}

type ParsedItinerary struct {
	Items []ParsedItineraryItem `json:"items"`
	Pins  []MappableActivity    `json:"pins"`
}
