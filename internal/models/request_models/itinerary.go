package request_models

import "github.com/google/uuid"

type CreateItineraryRequest struct {
	Title                  string   `json:"title" binding:"required"`
	DestinationCountry     string   `json:"destination_country" binding:"required"`
	DestinationCity        string   `json:"destination_city"`
	AdditionalDestinations []string `json:"additional_destinations"`

	DurationDays int `json:"duration_days" binding:"required,min=1"`

	EstimatedCostAmount   float64 `json:"estimated_cost_amount"`
	EstimatedCostCurrency string  `json:"estimated_cost_currency"`

	TravelStyle string   `json:"travel_style"`
	Themes      []string `json:"themes"`
	Highlights  []string `json:"highlights"`

	CapacityMin int `json:"capacity_min"`
	CapacityMax int `json:"capacity_max"`

	Status string `json:"status"`
}

type UpdateItineraryRequest struct {
	// ID comes from the URL path, not the body.
	ID uuid.UUID `json:"-"`

	Title                  string   `json:"title"`
	DestinationCountry     string   `json:"destination_country"`
	DestinationCity        string   `json:"destination_city"`
	AdditionalDestinations []string `json:"additional_destinations"`

	DurationDays int `json:"duration_days"`

	EstimatedCostAmount   float64 `json:"estimated_cost_amount"`
	EstimatedCostCurrency string  `json:"estimated_cost_currency"`

	TravelStyle string   `json:"travel_style"`
	Themes      []string `json:"themes"`
	Highlights  []string `json:"highlights"`

	CapacityMin int `json:"capacity_min"`
	CapacityMax int `json:"capacity_max"`

	Status string `json:"status"`
}
