package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripdesk/internal/models/request_models"
)

func completeInquiry() request_models.Inquiry {
	return request_models.Inquiry{
		Destination: "Paris",
		DateRange:   &request_models.DateRange{Start: "2026-06-01", End: "2026-06-11"},
		Travelers:   &request_models.Travelers{Adults: 2},
		Budget:      &request_models.Budget{Amount: 4500, Currency: "USD"},
		Accommodation: &request_models.Accommodation{
			HotelType:    "boutique",
			RoomCategory: "double",
		},
		MealPlan: "half board",
	}
}

func TestValidate_EmptyInquiry(t *testing.T) {
	v := NewValidationService()

	result := v.Validate(request_models.Inquiry{})

	assert.False(t, result.IsValid)

	fields := make([]string, 0, len(result.MissingFields))
	for _, mf := range result.MissingFields {
		fields = append(fields, mf.Field)
		assert.NotEmpty(t, mf.Question)
	}
	assert.ElementsMatch(t, []string{"destination", "date_range", "travelers"}, fields)
	assert.Equal(t, 0.0, result.Completeness)
}

func TestValidate_CompleteInquiry(t *testing.T) {
	v := NewValidationService()

	result := v.Validate(completeInquiry())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.MissingFields)
	assert.Equal(t, 1.0, result.Completeness)
}

func TestValidate_MissingSingleRequiredField(t *testing.T) {
	v := NewValidationService()

	cases := []struct {
		name     string
		mutate   func(*request_models.Inquiry)
		expected string
	}{
		{"no destination", func(i *request_models.Inquiry) { i.Destination = "" }, "destination"},
		{"no dates", func(i *request_models.Inquiry) { i.DateRange = nil }, "date_range"},
		{"no travelers", func(i *request_models.Inquiry) { i.Travelers = nil }, "travelers"},
		{"zero adults", func(i *request_models.Inquiry) { i.Travelers = &request_models.Travelers{Adults: 0} }, "travelers"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inquiry := completeInquiry()
			tc.mutate(&inquiry)

			result := v.Validate(inquiry)

			assert.False(t, result.IsValid)
			found := false
			for _, mf := range result.MissingFields {
				if mf.Field == tc.expected {
					found = true
				}
			}
			assert.True(t, found, "expected %s in missing fields", tc.expected)
		})
	}
}

func TestValidate_UnparsableDateIsAbsentNotFatal(t *testing.T) {
	v := NewValidationService()

	inquiry := completeInquiry()
	inquiry.DateRange = &request_models.DateRange{Start: "sometime next summer", End: "2026-06-11"}

	result := v.Validate(inquiry)

	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Warnings)

	found := false
	for _, mf := range result.MissingFields {
		if mf.Field == "date_range" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_EndBeforeStart(t *testing.T) {
	v := NewValidationService()

	inquiry := completeInquiry()
	inquiry.DateRange = &request_models.DateRange{Start: "2026-06-11", End: "2026-06-01"}

	result := v.Validate(inquiry)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Warnings, "end date is before start date")
}

func TestValidate_ChildAgesMismatchIsSoftWarning(t *testing.T) {
	v := NewValidationService()

	inquiry := completeInquiry()
	inquiry.Travelers = &request_models.Travelers{Adults: 2, Children: 2, ChildAges: []int{7}}

	result := v.Validate(inquiry)

	assert.True(t, result.IsValid)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidate_OptionalGapsSurfaced(t *testing.T) {
	v := NewValidationService()

	inquiry := completeInquiry()
	inquiry.Budget = nil
	inquiry.MealPlan = ""

	result := v.Validate(inquiry)

	assert.True(t, result.IsValid, "optional gaps never block a search")

	fields := make([]string, 0, len(result.OptionalFields))
	for _, of := range result.OptionalFields {
		fields = append(fields, of.Field)
		assert.Equal(t, PriorityMedium, of.Priority)
	}
	assert.ElementsMatch(t, []string{"budget", "meal_plan"}, fields)
	assert.InDelta(t, 5.0/7.0, result.Completeness, 1e-9)
}
