package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripdesk/internal/models/response_models"
)

func matchWithScore(id string, score int) response_models.MatchResult {
	return response_models.MatchResult{
		Itinerary: response_models.ItinerarySummary{ID: id},
		Score:     score,
	}
}

func TestRankMatches_DescendingWithFloor(t *testing.T) {
	ranked := RankMatches([]response_models.MatchResult{
		matchWithScore("a", 62),
		matchWithScore("b", 49),
		matchWithScore("c", 98),
		matchWithScore("d", 50),
		matchWithScore("e", 0),
	})

	ids := make([]string, 0, len(ranked))
	for _, m := range ranked {
		ids = append(ids, m.Itinerary.ID)
		assert.GreaterOrEqual(t, m.Score, AcceptanceFloor)
	}
	assert.Equal(t, []string{"c", "a", "d"}, ids)
}

func TestRankMatches_TiesKeepRetrievalOrder(t *testing.T) {
	input := []response_models.MatchResult{
		matchWithScore("first", 75),
		matchWithScore("second", 75),
		matchWithScore("third", 75),
		matchWithScore("top", 90),
	}

	for i := 0; i < 5; i++ {
		ranked := RankMatches(input)
		ids := make([]string, 0, len(ranked))
		for _, m := range ranked {
			ids = append(ids, m.Itinerary.ID)
		}
		assert.Equal(t, []string{"top", "first", "second", "third"}, ids)
	}
}

func TestRankMatches_Empty(t *testing.T) {
	assert.Empty(t, RankMatches(nil))
	assert.Empty(t, RankMatches([]response_models.MatchResult{matchWithScore("low", 10)}))
}
