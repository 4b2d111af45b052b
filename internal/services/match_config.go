package services

// Matching thresholds. These are contract values asserted by tests, keep
// them here rather than inline at call sites.
const (
	// AcceptanceFloor is the minimum score a candidate needs to be shown to
	// anyone. Sub-floor candidates are dropped before ranking.
	AcceptanceFloor = 50

	// StrongMatchThreshold separates a confident send from a send-with-caveat.
	StrongMatchThreshold = 70

	// TopMatchesLimit is how many ranked matches a decision carries.
	TopMatchesLimit = 3

	// MaxCandidates bounds retrieval so scoring cost stays flat.
	MaxCandidates = 50

	// DurationRetrievalWindow is the ±days pre-filter applied at retrieval
	// time. Duration is still scored separately, this only trims the pool.
	DurationRetrievalWindow = 2
)

// ScoringWeights is the single weight table for the match score. Each
// sub-score is scaled 0-100 before weighting; the weights sum to 1.
// Tuning these is a configuration change, not a code change.
type ScoringWeights struct {
	Destination float64
	Duration    float64
	Budget      float64
	Capacity    float64
	Activities  float64
}

// DefaultScoringWeights reflects destination and budget as the dominant
// buyer concerns, duration as a secondary fit signal, and capacity and
// activities as tie-breakers.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Destination: 0.40,
		Duration:    0.20,
		Budget:      0.25,
		Capacity:    0.10,
		Activities:  0.05,
	}
}
