package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type MatchingServiceInterface interface {
	// MatchInquiry runs the full pipeline: validate, retrieve candidates,
	// score, rank, decide. An invalid inquiry short-circuits to AskCustomer
	// without touching the inventory. A failed retrieval returns
	// utils.ErrRetrievalFailed instead of degrading to an empty match set.
	MatchInquiry(ctx context.Context, agencyID uuid.UUID, inquiry request_models.Inquiry) (*response_models.MatchOutcome, error)
}

type MatchingService struct {
	validator     ValidationServiceInterface
	scorer        ScoringServiceInterface
	workflow      WorkflowServiceInterface
	itineraryRepo repositories.ItineraryRepository
}

func NewMatchingService(
	validator ValidationServiceInterface,
	scorer ScoringServiceInterface,
	workflow WorkflowServiceInterface,
	itineraryRepo repositories.ItineraryRepository,
) MatchingServiceInterface {
	return &MatchingService{
		validator:     validator,
		scorer:        scorer,
		workflow:      workflow,
		itineraryRepo: itineraryRepo,
	}
}

func (m *MatchingService) MatchInquiry(ctx context.Context, agencyID uuid.UUID, inquiry request_models.Inquiry) (*response_models.MatchOutcome, error) {

	validation := m.validator.Validate(inquiry)

	if !validation.IsValid {
		// Retrieval and scoring are skipped entirely on an invalid inquiry.
		decision := m.workflow.Decide(validation, nil)
		return &response_models.MatchOutcome{
			Validation: validation,
			Matches:    []response_models.MatchResult{},
			Decision:   decision,
		}, nil
	}

	candidates, err := m.itineraryRepo.FindCandidates(ctx, agencyID, buildCandidateQuery(inquiry))
	if err != nil {
		log.Printf("Error retrieving candidates for agency %s: %v", agencyID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrRetrievalFailed, err)
	}

	scored := make([]response_models.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, m.scorer.Score(candidate, inquiry))
	}

	ranked := RankMatches(scored)
	decision := m.workflow.Decide(validation, ranked)

	return &response_models.MatchOutcome{
		Validation: validation,
		Matches:    ranked,
		Decision:   decision,
	}, nil
}

// buildCandidateQuery maps inquiry criteria onto the retrieval filters. With
// neither destination nor dates supplied it returns the whole scoped
// inventory, bounded by the cap, so callers can still fall back gracefully.
func buildCandidateQuery(inquiry request_models.Inquiry) repositories.CandidateQuery {
	query := repositories.CandidateQuery{
		Destination:    inquiry.Destination,
		DurationWindow: DurationRetrievalWindow,
		Limit:          MaxCandidates,
	}

	if days, ok := inquiryDurationDays(inquiry); ok {
		query.DurationDays = &days
	}

	return query
}
