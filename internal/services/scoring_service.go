package services

import (
	"fmt"
	"math"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

type ScoringServiceInterface interface {
	// Score computes the 0-100 match score for one candidate against one
	// inquiry. Deterministic: identical inputs always produce an identical
	// result.
	Score(item db_models.Itinerary, inquiry request_models.Inquiry) response_models.MatchResult
}

type ScoringService struct {
	weights ScoringWeights
}

func NewScoringService(weights ScoringWeights) ScoringServiceInterface {
	return &ScoringService{weights: weights}
}

// subScore is one evaluated dimension. A sub-score whose required inquiry
// field is absent is simply not evaluated and contributes 0 weighted points;
// the weights are NOT renormalized. A sparse inquiry therefore cannot reach
// 100 even against an ideal candidate; confidence tracks completeness.
type subScore struct {
	value     int
	evaluated bool
}

func (s *ScoringService) Score(item db_models.Itinerary, inquiry request_models.Inquiry) response_models.MatchResult {
	result := response_models.MatchResult{
		Itinerary: buildItinerarySummary(item),
	}

	destination := s.scoreDestination(item, inquiry, &result)
	duration := s.scoreDuration(item, inquiry, &result)
	budget := s.scoreBudget(item, inquiry, &result)
	capacity := s.scoreCapacity(item, inquiry, &result)
	activities := s.scoreActivities(item, inquiry, &result)

	result.SubScores = response_models.SubScores{
		Destination: destination.value,
		Duration:    duration.value,
		Budget:      budget.value,
		Capacity:    capacity.value,
		Activities:  activities.value,
	}

	total := weighted(destination, s.weights.Destination) +
		weighted(duration, s.weights.Duration) +
		weighted(budget, s.weights.Budget) +
		weighted(capacity, s.weights.Capacity) +
		weighted(activities, s.weights.Activities)

	result.Score = clampScore(int(math.Round(total)))

	return result
}

func weighted(ss subScore, weight float64) float64 {
	if !ss.evaluated {
		return 0
	}
	return float64(ss.value) * weight
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Destination: all-or-nothing fuzzy match between the inquiry destination
// and the item's primary or additional destinations.
func (s *ScoringService) scoreDestination(item db_models.Itinerary, inquiry request_models.Inquiry, result *response_models.MatchResult) subScore {
	if inquiry.Destination == "" {
		return subScore{}
	}

	itemDestinations := append(
		[]string{item.DestinationCountry, item.DestinationCity},
		item.AdditionalDestinations...,
	)

	if utils.MatchesAny(inquiry.Destination, itemDestinations) {
		result.MatchReasons = append(result.MatchReasons,
			fmt.Sprintf("Destination matches: %s", inquiry.Destination))
		return subScore{value: 100, evaluated: true}
	}

	result.Gaps = append(result.Gaps,
		fmt.Sprintf("Destination mismatch: wanted %s", inquiry.Destination))
	return subScore{value: 0, evaluated: true}
}

// Duration: tiered by absolute day difference from the derived trip length.
func (s *ScoringService) scoreDuration(item db_models.Itinerary, inquiry request_models.Inquiry, result *response_models.MatchResult) subScore {
	wanted, ok := inquiryDurationDays(inquiry)
	if !ok {
		return subScore{}
	}

	diff := item.DurationDays - wanted
	if diff < 0 {
		diff = -diff
	}

	var value int
	switch {
	case diff == 0:
		value = 100
	case diff == 1:
		value = 90
	case diff == 2:
		value = 75
	case diff == 3:
		value = 60
	case diff <= 5:
		value = 40
	default:
		value = 20
	}

	if diff <= 1 {
		result.MatchReasons = append(result.MatchReasons,
			fmt.Sprintf("Duration fits: %d days", item.DurationDays))
	} else {
		result.Gaps = append(result.Gaps,
			fmt.Sprintf("Duration off by %d days (%d vs %d)", diff, item.DurationDays, wanted))
	}

	return subScore{value: value, evaluated: true}
}

// Budget: tiered by percentage difference from the stated budget. An item
// without a published price scores the neutral 50. Missing candidate data
// gets a neutral default; a missing inquiry budget skips the sub-score.
func (s *ScoringService) scoreBudget(item db_models.Itinerary, inquiry request_models.Inquiry, result *response_models.MatchResult) subScore {
	if inquiry.Budget == nil || inquiry.Budget.Amount <= 0 {
		return subScore{}
	}

	if item.EstimatedCostAmount <= 0 {
		result.Gaps = append(result.Gaps, "Itinerary has no published price")
		return subScore{value: 50, evaluated: true}
	}

	budget := inquiry.Budget.Amount
	pctDiff := math.Abs(item.EstimatedCostAmount-budget) / budget * 100

	var value int
	switch {
	case pctDiff <= 10:
		value = 100
	case pctDiff <= 20:
		value = 85
	case pctDiff <= 30:
		value = 70
	case pctDiff <= 50:
		value = 50
	default:
		value = 30
	}

	if pctDiff <= 10 {
		result.MatchReasons = append(result.MatchReasons,
			fmt.Sprintf("Within budget: %.0f %s", item.EstimatedCostAmount, item.EstimatedCostCurrency))
	} else {
		result.Gaps = append(result.Gaps,
			fmt.Sprintf("Budget mismatch: %.0f vs %.0f", item.EstimatedCostAmount, budget))
	}

	return subScore{value: value, evaluated: true}
}

// Capacity: most itineraries are flexible on group size, so a stated party
// scores full marks. The capacity range only adds narration.
func (s *ScoringService) scoreCapacity(item db_models.Itinerary, inquiry request_models.Inquiry, result *response_models.MatchResult) subScore {
	if inquiry.Travelers == nil || inquiry.Travelers.Adults < 1 {
		return subScore{}
	}

	party := inquiry.Travelers.Adults + inquiry.Travelers.Children + inquiry.Travelers.Infants
	if item.CapacityMax > 0 && (party < item.CapacityMin || party > item.CapacityMax) {
		result.Gaps = append(result.Gaps,
			fmt.Sprintf("Group of %d outside the usual %d-%d range", party, item.CapacityMin, item.CapacityMax))
	} else {
		result.MatchReasons = append(result.MatchReasons,
			fmt.Sprintf("Suitable for a group of %d", party))
	}

	return subScore{value: 100, evaluated: true}
}

// Activities: proportion of requested interests found among the item's
// highlights and themes. No requested activities means a neutral 50.
func (s *ScoringService) scoreActivities(item db_models.Itinerary, inquiry request_models.Inquiry, result *response_models.MatchResult) subScore {
	if len(inquiry.Activities) == 0 {
		return subScore{value: 50, evaluated: true}
	}

	offered := append(append([]string{}, item.Highlights...), item.Themes...)

	matched := 0
	for _, activity := range inquiry.Activities {
		if utils.MatchesAny(activity, offered) {
			matched++
			result.MatchReasons = append(result.MatchReasons,
				fmt.Sprintf("Offers %s", activity))
		} else {
			result.Gaps = append(result.Gaps,
				fmt.Sprintf("Does not cover %s", activity))
		}
	}

	value := int(math.Round(float64(matched) / float64(len(inquiry.Activities)) * 100))
	return subScore{value: value, evaluated: true}
}
