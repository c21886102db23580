package utils

import "errors"

var (
	ErrItineraryNotFound      = errors.New("itinerary not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrSaveFailed             = errors.New("could not save itinerary")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of ai")
	ErrEmailAlreadyUsed       = errors.New("email already used")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)
