package request_models

// Inquiry is the structured travel request the matching engine consumes.
// Every field is optional at this level; the validation service decides
// which absences block a search. Optional scalars are pointers so
// "not supplied" and "zero" stay distinguishable.
type Inquiry struct {
	Destination            string   `json:"destination"`
	AdditionalDestinations []string `json:"additional_destinations,omitempty"`

	DateRange *DateRange `json:"date_range,omitempty"`
	Travelers *Travelers `json:"travelers,omitempty"`
	Budget    *Budget    `json:"budget,omitempty"`

	PackageType   string         `json:"package_type,omitempty"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	MealPlan      string         `json:"meal_plan,omitempty"`

	Activities []string `json:"activities,omitempty"`
}

// DateRange carries the raw strings from the client; unparsable values are
// treated as absent by the validator, never rejected outright.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Travelers struct {
	Adults    int   `json:"adults"`
	Children  int   `json:"children"`
	ChildAges []int `json:"child_ages,omitempty"`
	Infants   int   `json:"infants"`
}

type Budget struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Flexible bool    `json:"flexible"`
}

type Accommodation struct {
	HotelType    string `json:"hotel_type"`
	StarRating   int    `json:"star_rating"`
	RoomCategory string `json:"room_category"`
}

type CreateInquiryRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	// Either a structured inquiry or raw text to extract one from.
	Inquiry *Inquiry `json:"inquiry,omitempty"`
	RawText string   `json:"raw_text,omitempty"`
}

type UpdateInquiryRequest struct {
	Inquiry *Inquiry `json:"inquiry" binding:"required"`
}

type SemanticSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
