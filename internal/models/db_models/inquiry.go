package db_models

import (
	"github.com/google/uuid"
)

const (
	InquiryStatusNew       = "new"
	InquiryStatusQualified = "qualified"
	InquiryStatusMatched   = "matched"
	InquiryStatusForwarded = "forwarded"
	InquiryStatusClosed    = "closed"
)

type Inquiry struct {
	BaseModel
	AgencyID uuid.UUID `gorm:"type:uuid;index"`

	CustomerName  string
	CustomerEmail string

	// RawText is the original email/message the inquiry came from, if any.
	RawText string

	// Payload holds the structured inquiry (request_models.Inquiry) as JSON.
	Payload []byte `gorm:"type:jsonb"`

	Status string `gorm:"index;default:new"`

	// LastDecisionAction records the most recent workflow outcome
	// (ask_customer, send_itineraries, ...), empty until matched once.
	LastDecisionAction string
}
