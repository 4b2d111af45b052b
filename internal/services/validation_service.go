package services

import (
	"fmt"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
)

type ValidationServiceInterface interface {
	// Validate decides whether the inquiry carries enough information to
	// search the inventory. Pure function of its input.
	Validate(inquiry request_models.Inquiry) response_models.ValidationResult
}

type ValidationService struct{}

func NewValidationService() ValidationServiceInterface {
	return &ValidationService{}
}

// completenessChecklist is the fixed field list behind the completeness
// fraction. It is reported even for valid inquiries so downstream systems
// can judge inquiry quality.
var completenessChecklist = []string{
	"destination",
	"date_range",
	"travelers",
	"budget",
	"accommodation",
	"meal_plan",
	"room_category",
}

func (v *ValidationService) Validate(inquiry request_models.Inquiry) response_models.ValidationResult {
	result := response_models.ValidationResult{IsValid: true}

	present := map[string]bool{}

	if inquiry.Destination != "" {
		present["destination"] = true
	} else {
		result.MissingFields = append(result.MissingFields, response_models.MissingField{
			Field:    "destination",
			Question: "Where would you like to travel?",
			Priority: PriorityCritical,
		})
	}

	if v.validateDateRange(inquiry, &result) {
		present["date_range"] = true
	}

	if inquiry.Travelers != nil && inquiry.Travelers.Adults >= 1 {
		present["travelers"] = true
	} else {
		result.MissingFields = append(result.MissingFields, response_models.MissingField{
			Field:    "travelers",
			Question: "How many people will be traveling?",
			Priority: PriorityHigh,
		})
	}

	if inquiry.Travelers != nil && len(inquiry.Travelers.ChildAges) != inquiry.Travelers.Children {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"child ages given for %d of %d children",
			len(inquiry.Travelers.ChildAges), inquiry.Travelers.Children))
	}

	// Nice-to-have gaps. These never block a search, they feed the
	// supplier-forward branch and the agent UI.
	if inquiry.Budget != nil && inquiry.Budget.Amount > 0 {
		present["budget"] = true
	} else {
		result.OptionalFields = append(result.OptionalFields, response_models.MissingField{
			Field:    "budget",
			Question: "What is your approximate budget per person?",
			Priority: PriorityMedium,
		})
	}

	if inquiry.Accommodation != nil && inquiry.Accommodation.HotelType != "" {
		present["accommodation"] = true
	} else {
		result.OptionalFields = append(result.OptionalFields, response_models.MissingField{
			Field:    "accommodation",
			Question: "What type of accommodation do you prefer?",
			Priority: PriorityMedium,
		})
	}

	if inquiry.MealPlan != "" {
		present["meal_plan"] = true
	} else {
		result.OptionalFields = append(result.OptionalFields, response_models.MissingField{
			Field:    "meal_plan",
			Question: "Which meal plan would you like (breakfast only, half board, all inclusive)?",
			Priority: PriorityMedium,
		})
	}

	if inquiry.Accommodation != nil && inquiry.Accommodation.RoomCategory != "" {
		present["room_category"] = true
	}

	count := 0
	for _, field := range completenessChecklist {
		if present[field] {
			count++
		}
	}
	result.Completeness = float64(count) / float64(len(completenessChecklist))

	result.IsValid = len(result.MissingFields) == 0

	return result
}

// validateDateRange reports whether a usable range is present, appending the
// missing-field entry and parse warnings otherwise. Unparsable dates count
// as absent, never as a hard failure.
func (v *ValidationService) validateDateRange(inquiry request_models.Inquiry, result *response_models.ValidationResult) bool {
	ask := func() {
		result.MissingFields = append(result.MissingFields, response_models.MissingField{
			Field:    "date_range",
			Question: "What are your travel dates?",
			Priority: PriorityCritical,
		})
	}

	if inquiry.DateRange == nil {
		ask()
		return false
	}

	start, okStart := utils.ParseFlexibleDate(inquiry.DateRange.Start)
	end, okEnd := utils.ParseFlexibleDate(inquiry.DateRange.End)

	if !okStart && inquiry.DateRange.Start != "" {
		result.Warnings = append(result.Warnings, fmt.Sprintf("start date %q could not be parsed", inquiry.DateRange.Start))
	}
	if !okEnd && inquiry.DateRange.End != "" {
		result.Warnings = append(result.Warnings, fmt.Sprintf("end date %q could not be parsed", inquiry.DateRange.End))
	}

	if !okStart || !okEnd {
		ask()
		return false
	}

	if end.Before(start) {
		result.Warnings = append(result.Warnings, "end date is before start date")
		ask()
		return false
	}

	return true
}

// inquiryDurationDays derives the trip length in whole days, shared by
// retrieval and scoring. False when either date is absent or unparsable.
func inquiryDurationDays(inquiry request_models.Inquiry) (int, bool) {
	if inquiry.DateRange == nil {
		return 0, false
	}
	start, okStart := utils.ParseFlexibleDate(inquiry.DateRange.Start)
	end, okEnd := utils.ParseFlexibleDate(inquiry.DateRange.End)
	if !okStart || !okEnd || end.Before(start) {
		return 0, false
	}
	return utils.DurationDays(start, end), true
}
