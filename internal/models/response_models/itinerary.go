package response_models

type ItinerarySummary struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	DestinationCountry     string   `json:"destination_country"`
	DestinationCity        string   `json:"destination_city"`
	AdditionalDestinations []string `json:"additional_destinations,omitempty"`
	DurationDays           int      `json:"duration_days"`
	EstimatedCostAmount    float64  `json:"estimated_cost_amount"`
	EstimatedCostCurrency  string   `json:"estimated_cost_currency,omitempty"`
	TravelStyle            string   `json:"travel_style,omitempty"`
	Themes                 []string `json:"themes,omitempty"`
	Highlights             []string `json:"highlights,omitempty"`
	CapacityMin            int      `json:"capacity_min"`
	CapacityMax            int      `json:"capacity_max"`
	Status                 string   `json:"status"`
}

type SemanticSearchHit struct {
	Itinerary  ItinerarySummary `json:"itinerary"`
	Similarity float64          `json:"similarity"`
}
