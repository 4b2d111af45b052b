package services

import (
	"sort"

	"tripdesk/internal/models/response_models"
)

// RankMatches drops candidates below the acceptance floor and sorts the rest
// descending by score. The sort is stable: ties keep retrieval order, which
// keeps ranking reproducible for a fixed inventory snapshot.
func RankMatches(matches []response_models.MatchResult) []response_models.MatchResult {
	ranked := make([]response_models.MatchResult, 0, len(matches))
	for _, m := range matches {
		if m.Score >= AcceptanceFloor {
			ranked = append(ranked, m)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
