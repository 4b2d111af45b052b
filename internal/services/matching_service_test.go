package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type fakeItineraryRepo struct {
	candidates []db_models.Itinerary
	err        error

	findCalls int
	lastQuery repositories.CandidateQuery
}

func (f *fakeItineraryRepo) FindCandidates(ctx context.Context, agencyID uuid.UUID, query repositories.CandidateQuery) ([]db_models.Itinerary, error) {
	f.findCalls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	if query.Limit > 0 && len(f.candidates) > query.Limit {
		return f.candidates[:query.Limit], nil
	}
	return f.candidates, nil
}

func (f *fakeItineraryRepo) CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func (f *fakeItineraryRepo) UpdateItinerary(ctx context.Context, itinerary *db_models.Itinerary) error {
	return errors.New("not implemented")
}

func (f *fakeItineraryRepo) Delete(ctx context.Context, agencyID, id uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeItineraryRepo) GetByID(ctx context.Context, agencyID uuid.UUID, id string) (*db_models.Itinerary, error) {
	return nil, nil
}

func (f *fakeItineraryRepo) GetByIDs(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]db_models.Itinerary, error) {
	return nil, nil
}

func (f *fakeItineraryRepo) List(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error) {
	return nil, nil
}

func newTestMatcher(repo repositories.ItineraryRepository) MatchingServiceInterface {
	return NewMatchingService(
		NewValidationService(),
		NewScoringService(DefaultScoringWeights()),
		NewWorkflowService(),
		repo,
	)
}

func TestMatchInquiry_InvalidInquirySkipsRetrieval(t *testing.T) {
	repo := &fakeItineraryRepo{}
	matcher := newTestMatcher(repo)

	outcome, err := matcher.MatchInquiry(context.Background(), uuid.New(), request_models.Inquiry{})
	require.NoError(t, err)

	assert.Equal(t, response_models.ActionAskCustomer, outcome.Decision.Action)
	assert.Equal(t, 0, repo.findCalls, "retrieval must be skipped for an invalid inquiry")
	assert.Empty(t, outcome.Matches)
}

func TestMatchInquiry_RetrievalFailurePropagates(t *testing.T) {
	repo := &fakeItineraryRepo{err: errors.New("connection refused")}
	matcher := newTestMatcher(repo)

	outcome, err := matcher.MatchInquiry(context.Background(), uuid.New(), completeInquiry())

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrRetrievalFailed))
	assert.Nil(t, outcome, "a failed retrieval must not look like an empty match set")
}

func TestMatchInquiry_StrongMatch(t *testing.T) {
	item := parisItinerary()
	item.ID = uuid.New()
	repo := &fakeItineraryRepo{candidates: []db_models.Itinerary{item}}
	matcher := newTestMatcher(repo)

	outcome, err := matcher.MatchInquiry(context.Background(), uuid.New(), completeInquiry())
	require.NoError(t, err)

	assert.Equal(t, response_models.ActionSendItineraries, outcome.Decision.Action)
	assert.GreaterOrEqual(t, outcome.Decision.BestScore, StrongMatchThreshold)
	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, item.ID.String(), outcome.Matches[0].Itinerary.ID)
}

func TestMatchInquiry_CaveatBand(t *testing.T) {
	item := parisItinerary()
	item.EstimatedCostAmount = 9000
	item.DurationDays = 16
	repo := &fakeItineraryRepo{candidates: []db_models.Itinerary{item}}
	matcher := newTestMatcher(repo)

	outcome, err := matcher.MatchInquiry(context.Background(), uuid.New(), completeInquiry())
	require.NoError(t, err)

	assert.Equal(t, response_models.ActionSendItinerariesWithCaveat, outcome.Decision.Action)
	assert.NotEmpty(t, outcome.Decision.Note)
}

func TestMatchInquiry_NoViableMatchForwardsToSupplier(t *testing.T) {
	// Candidate exists but matches nothing the customer asked for.
	item := db_models.Itinerary{
		DestinationCountry:  "Japan",
		DestinationCity:     "Tokyo",
		DurationDays:        3,
		EstimatedCostAmount: 20000,
		Status:              db_models.ItineraryStatusActive,
	}
	repo := &fakeItineraryRepo{candidates: []db_models.Itinerary{item}}
	matcher := newTestMatcher(repo)

	outcome, err := matcher.MatchInquiry(context.Background(), uuid.New(), completeInquiry())
	require.NoError(t, err)

	assert.Equal(t, response_models.ActionForwardToSupplier, outcome.Decision.Action)
	assert.Empty(t, outcome.Matches)
}

func TestMatchInquiry_CandidateQueryConstruction(t *testing.T) {
	repo := &fakeItineraryRepo{}
	matcher := newTestMatcher(repo)

	_, err := matcher.MatchInquiry(context.Background(), uuid.New(), completeInquiry())
	require.NoError(t, err)

	assert.Equal(t, "Paris", repo.lastQuery.Destination)
	require.NotNil(t, repo.lastQuery.DurationDays)
	assert.Equal(t, 10, *repo.lastQuery.DurationDays)
	assert.Equal(t, DurationRetrievalWindow, repo.lastQuery.DurationWindow)
	assert.Equal(t, MaxCandidates, repo.lastQuery.Limit)
}

func TestMatchInquiry_FloorNeverLeaks(t *testing.T) {
	items := make([]db_models.Itinerary, 0, 10)
	for i := 0; i < 10; i++ {
		item := parisItinerary()
		item.ID = uuid.New()
		if i%2 == 0 {
			// Kill the destination sub-score so these land under the floor.
			item.DestinationCountry = "Japan"
			item.DestinationCity = "Tokyo"
			item.EstimatedCostAmount = 20000
		}
		items = append(items, item)
	}
	repo := &fakeItineraryRepo{candidates: items}
	matcher := newTestMatcher(repo)

	outcome, err := matcher.MatchInquiry(context.Background(), uuid.New(), completeInquiry())
	require.NoError(t, err)

	for _, m := range outcome.Matches {
		assert.GreaterOrEqual(t, m.Score, AcceptanceFloor)
	}
}
