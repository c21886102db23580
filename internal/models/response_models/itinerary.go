package response_models

type GeneratedItinerary struct {
	ItineraryText string `json:"itineraryText"`
}

type SavedItinerary struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Destination    string  `json:"destination"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	NumberOfPeople int     `json:"numberOfPeople"`
	Budget         float64 `json:"budget"`
	Preferences    string  `json:"preferences"`
	ItineraryText  string  `json:"itineraryText"`
	CreatedAt      string  `json:"createdAt"`
}
