package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderwise/internal/models/db_models"
)

// ItineraryRepository is append-only: records are created and read, never
// updated or deleted.
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.SavedItinerary) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.SavedItinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.SavedItinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *itineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error) {
	var itineraries []db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.SavedItinerary, error) {
	var itinerary db_models.SavedItinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}
