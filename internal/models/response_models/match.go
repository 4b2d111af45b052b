package response_models

// Workflow actions. One of these comes back from every matching run.
const (
	ActionAskCustomer               = "ask_customer"
	ActionSendItineraries           = "send_itineraries"
	ActionSendItinerariesWithCaveat = "send_itineraries_with_caveat"
	ActionForwardToSupplier         = "forward_to_supplier"
)

type MissingField struct {
	Field    string `json:"field"`
	Question string `json:"question"`
	Priority string `json:"priority"`
}

type ValidationResult struct {
	IsValid       bool           `json:"is_valid"`
	MissingFields []MissingField `json:"missing_fields,omitempty"`
	// OptionalFields are nice-to-have gaps surfaced to the supplier-forward
	// branch, never blocking.
	OptionalFields []MissingField `json:"optional_fields,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
	Completeness   float64        `json:"completeness"`
}

type SubScores struct {
	Destination int `json:"destination"`
	Duration    int `json:"duration"`
	Budget      int `json:"budget"`
	Capacity    int `json:"capacity"`
	Activities  int `json:"activities"`
}

type MatchResult struct {
	Itinerary    ItinerarySummary `json:"itinerary"`
	Score        int              `json:"score"`
	SubScores    SubScores        `json:"sub_scores"`
	MatchReasons []string         `json:"match_reasons,omitempty"`
	Gaps         []string         `json:"gaps,omitempty"`
}

type WorkflowDecision struct {
	Action string `json:"action"`

	// ask_customer
	MissingFields []MissingField `json:"missing_fields,omitempty"`

	// send_itineraries / send_itineraries_with_caveat
	Matches   []MatchResult `json:"matches,omitempty"`
	BestScore int           `json:"best_score,omitempty"`

	// send_itineraries_with_caveat / forward_to_supplier
	Note string `json:"note,omitempty"`

	// forward_to_supplier
	OptionalFields []MissingField `json:"optional_fields,omitempty"`
}

// MatchOutcome is the full result of one engine invocation.
type MatchOutcome struct {
	Validation ValidationResult `json:"validation"`
	Matches    []MatchResult    `json:"matches"`
	Decision   WorkflowDecision `json:"decision"`
}
