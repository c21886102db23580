package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"wanderwise/internal/models/db_models"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

// ItineraryServiceInterface persists and reads saved itineraries. Writes
// propagate failures with their cause; reads degrade to empty results so
// the UI shows "nothing found" instead of an error.
type ItineraryServiceInterface interface {
	SaveItinerary(ctx context.Context, userID string, request request_models.SaveItineraryRequest) (string, error)
	ListUserItineraries(ctx context.Context, userID string) ([]response_models.SavedItinerary, error)
	GetItineraryByID(ctx context.Context, userID, itineraryID string) (*response_models.SavedItinerary, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, userID string, request request_models.SaveItineraryRequest) (string, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	record := &db_models.SavedItinerary{
		UserID:         owner,
		Name:           request.Name,
		Destination:    request.Destination,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		NumberOfPeople: request.NumberOfPeople,
		Budget:         request.Budget,
		Preferences:    request.Preferences,
		ItineraryText:  request.ItineraryText,
	}

	id, err := s.itineraryRepo.Create(ctx, record)
	if err != nil {
		log.Printf("Error saving itinerary: %v", err)
		return "", fmt.Errorf("%w: %v", utils.ErrSaveFailed, err)
	}

	return id.String(), nil
}

func (s *ItineraryService) ListUserItineraries(ctx context.Context, userID string) ([]response_models.SavedItinerary, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return []response_models.SavedItinerary{}, nil
	}

	records, err := s.itineraryRepo.ListByUser(ctx, owner)
	if err != nil {
		log.Printf("Error listing itineraries for user %s: %v", userID, err)
		return []response_models.SavedItinerary{}, nil
	}

	itineraries := make([]response_models.SavedItinerary, 0, len(records))
	for _, record := range records {
		itineraries = append(itineraries, toSavedItineraryResponse(&record))
	}
	return itineraries, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, userID, itineraryID string) (*response_models.SavedItinerary, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}
	id, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, nil
	}

	record, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching itinerary %s: %v", itineraryID, err)
		return nil, nil
	}
	if record == nil {
		return nil, nil
	}

	// A record under another owner is absent, not forbidden.
	if record.UserID != owner {
		log.Printf("User %s requested itinerary %s belonging to another user", userID, itineraryID)
		return nil, nil
	}

	response := toSavedItineraryResponse(record)
	return &response, nil
}

func toSavedItineraryResponse(record *db_models.SavedItinerary) response_models.SavedItinerary {
	return response_models.SavedItinerary{
		ID:             record.ID.String(),
		UserID:         record.UserID.String(),
		Name:           record.Name,
		Destination:    record.Destination,
		StartDate:      record.StartDate,
		EndDate:        record.EndDate,
		NumberOfPeople: record.NumberOfPeople,
		Budget:         record.Budget,
		Preferences:    record.Preferences,
		ItineraryText:  record.ItineraryText,
		CreatedAt:      utils.FormatRFC3339(utils.FromUnixSeconds(record.CreatedAt)),
	}
}
