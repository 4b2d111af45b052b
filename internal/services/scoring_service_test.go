package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
)

func parisItinerary() db_models.Itinerary {
	return db_models.Itinerary{
		Title:                 "Classic Paris",
		DestinationCountry:    "France",
		DestinationCity:       "Paris",
		DurationDays:          10,
		EstimatedCostAmount:   4500,
		EstimatedCostCurrency: "USD",
		Themes:                []string{"romance", "culture"},
		Highlights:            []string{"Louvre", "Seine cruise"},
		Status:                db_models.ItineraryStatusPublished,
	}
}

func TestScore_IdealCandidate(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	result := scorer.Score(parisItinerary(), completeInquiry())

	// 40 + 20 + 25 + 10 + 2.5 rounds to 98.
	assert.Equal(t, 98, result.Score)
	assert.Equal(t, 100, result.SubScores.Destination)
	assert.Equal(t, 100, result.SubScores.Duration)
	assert.Equal(t, 100, result.SubScores.Budget)
	assert.Equal(t, 100, result.SubScores.Capacity)
	assert.Equal(t, 50, result.SubScores.Activities)
	assert.NotEmpty(t, result.MatchReasons)
}

func TestScore_DeterministicAndBounded(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())
	item := parisItinerary()
	inquiry := completeInquiry()

	first := scorer.Score(item, inquiry)
	second := scorer.Score(item, inquiry)
	assert.Equal(t, first, second)

	sparse := request_models.Inquiry{}
	for _, candidate := range []db_models.Itinerary{item, {}, {DurationDays: 400, EstimatedCostAmount: 1e9}} {
		for _, inq := range []request_models.Inquiry{inquiry, sparse} {
			score := scorer.Score(candidate, inq).Score
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestScore_DestinationMismatch(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	inquiry := completeInquiry()
	inquiry.Destination = "Tokyo"

	result := scorer.Score(parisItinerary(), inquiry)

	assert.Equal(t, 0, result.SubScores.Destination)
	assert.NotEmpty(t, result.Gaps)
}

func TestScore_DestinationMatchesAdditionalDestination(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	item := parisItinerary()
	item.AdditionalDestinations = []string{"Nice", "Lyon"}

	inquiry := completeInquiry()
	inquiry.Destination = "nice"

	result := scorer.Score(item, inquiry)
	assert.Equal(t, 100, result.SubScores.Destination)
}

func TestScore_DurationTiers(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())
	inquiry := completeInquiry() // 10 days

	cases := []struct {
		itemDays int
		expected int
	}{
		{10, 100}, {11, 90}, {9, 90}, {12, 75}, {13, 60}, {15, 40}, {16, 20}, {30, 20},
	}

	for _, tc := range cases {
		item := parisItinerary()
		item.DurationDays = tc.itemDays
		result := scorer.Score(item, inquiry)
		assert.Equal(t, tc.expected, result.SubScores.Duration, "item duration %d", tc.itemDays)
	}
}

func TestScore_BudgetTiers(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())
	inquiry := completeInquiry() // budget 4500

	cases := []struct {
		cost     float64
		expected int
	}{
		{4500, 100}, {4900, 100}, {5300, 85}, {5800, 70}, {6500, 50}, {9000, 30},
	}

	for _, tc := range cases {
		item := parisItinerary()
		item.EstimatedCostAmount = tc.cost
		result := scorer.Score(item, inquiry)
		assert.Equal(t, tc.expected, result.SubScores.Budget, "item cost %.0f", tc.cost)
	}
}

func TestScore_MissingInquiryFieldSkipsSubScore(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	inquiry := completeInquiry()
	inquiry.Budget = nil
	inquiry.DateRange = nil

	result := scorer.Score(parisItinerary(), inquiry)

	// Only destination (40), capacity (10) and the default activities (2.5)
	// contribute; missing inquiry fields are not renormalized away.
	assert.Equal(t, 53, result.Score)
}

func TestScore_UnpricedItemGetsNeutralBudget(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	item := parisItinerary()
	item.EstimatedCostAmount = 0

	result := scorer.Score(item, completeInquiry())

	assert.Equal(t, 50, result.SubScores.Budget)
	assert.Contains(t, result.Gaps, "Itinerary has no published price")
}

func TestScore_ActivitiesProportional(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	inquiry := completeInquiry()
	inquiry.Activities = []string{"culture", "surfing"}

	result := scorer.Score(parisItinerary(), inquiry)

	assert.Equal(t, 50, result.SubScores.Activities)

	inquiry.Activities = []string{"culture", "romance"}
	result = scorer.Score(parisItinerary(), inquiry)
	assert.Equal(t, 100, result.SubScores.Activities)
}

func TestScore_CaveatBandScenario(t *testing.T) {
	scorer := NewScoringService(DefaultScoringWeights())

	// Double the budget and six days off: budget tier 30, duration tier 20.
	item := parisItinerary()
	item.EstimatedCostAmount = 9000
	item.DurationDays = 16

	result := scorer.Score(item, completeInquiry())

	assert.Equal(t, 30, result.SubScores.Budget)
	assert.Equal(t, 20, result.SubScores.Duration)
	assert.GreaterOrEqual(t, result.Score, AcceptanceFloor)
	assert.Less(t, result.Score, StrongMatchThreshold)
}
