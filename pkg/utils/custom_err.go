package utils

import "errors"

var (
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")

	// ErrRetrievalFailed marks a failed inventory lookup. It is deliberately
	// distinct from an empty candidate set: an empty set routes the inquiry
	// to a supplier, a failed lookup must not.
	ErrRetrievalFailed = errors.New("candidate retrieval failed")

	ErrUnexpectedAIOutput = errors.New("unexpected AI output")
)
