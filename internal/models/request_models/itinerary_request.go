package request_models

type GenerateItineraryRequest struct {
	Destination    string  `json:"destination" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        string  `json:"endDate" binding:"required"`
	NumberOfPeople int     `json:"numberOfPeople" binding:"required,min=1"`
	Budget         float64 `json:"budget" binding:"required,min=0"`
	Preferences    string  `json:"preferences"`
}

type SaveItineraryRequest struct {
	Name           string  `json:"name" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        string  `json:"endDate" binding:"required"`
	NumberOfPeople int     `json:"numberOfPeople" binding:"required,min=1"`
	Budget         float64 `json:"budget" binding:"min=0"`
	Preferences    string  `json:"preferences"`
	ItineraryText  string  `json:"itineraryText" binding:"required"`
}

type ParseItineraryRequest struct {
	Text        string `json:"text" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}
