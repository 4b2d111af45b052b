package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ItineraryStatusDraft     = "draft"
	ItineraryStatusActive    = "active"
	ItineraryStatusPublished = "published"
	ItineraryStatusArchived  = "archived"
)

type Itinerary struct {
	BaseModel
	AgencyID uuid.UUID `gorm:"type:uuid;index"`

	Title                  string
	DestinationCountry     string
	DestinationCity        string
	AdditionalDestinations pq.StringArray `gorm:"type:text[]"`

	DurationDays int

	// Zero amount means the itinerary has no published price yet.
	EstimatedCostAmount   float64
	EstimatedCostCurrency string

	TravelStyle string
	Themes      pq.StringArray `gorm:"type:text[]"`
	Highlights  pq.StringArray `gorm:"type:text[]"`

	CapacityMin int
	CapacityMax int

	Status string `gorm:"index;default:draft"`
}

func (i *Itinerary) IsBookable() bool {
	return i.Status == ItineraryStatusActive || i.Status == ItineraryStatusPublished
}
