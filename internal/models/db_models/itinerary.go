package db_models

import "github.com/google/uuid"

// SavedItinerary is append-only: the repository exposes no update or
// delete, so a row never changes after creation.
type SavedItinerary struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Destination    string
	StartDate      string
	EndDate        string
	NumberOfPeople int
	Budget         float64
	Preferences    string
	ItineraryText  string
}
