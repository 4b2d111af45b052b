package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type SearchServiceInterface interface {
	// SemanticSearch finds itineraries close in meaning to a free-text
	// query, e.g. "romantic beach escape". Complements the structured
	// matching pipeline, does not participate in it.
	SemanticSearch(ctx context.Context, agencyID uuid.UUID, query string, limit int) ([]response_models.SemanticSearchHit, error)
}

type SearchService struct {
	embedder      utils.EmbeddingClientInterface
	embeddingRepo repositories.ItineraryEmbeddingRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewSearchService(
	embedder utils.EmbeddingClientInterface,
	embeddingRepo repositories.ItineraryEmbeddingRepository,
	itineraryRepo repositories.ItineraryRepository,
) SearchServiceInterface {
	return &SearchService{
		embedder:      embedder,
		embeddingRepo: embeddingRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *SearchService) SemanticSearch(ctx context.Context, agencyID uuid.UUID, query string, limit int) ([]response_models.SemanticSearchHit, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding search query: %v", err)
		return nil, utils.ErrUnexpectedAIOutput
	}

	hits, err := s.embeddingRepo.FindNearest(ctx, agencyID, vector, limit)
	if err != nil {
		log.Printf("Error searching embeddings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if len(hits) == 0 {
		return []response_models.SemanticSearchHit{}, nil
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.ItineraryID)
	}

	itineraries, err := s.itineraryRepo.GetByIDs(ctx, agencyID, ids)
	if err != nil {
		log.Printf("Error hydrating search results: %v", err)
		return nil, utils.ErrDatabaseError
	}

	byID := make(map[uuid.UUID]int, len(itineraries))
	for i := range itineraries {
		byID[itineraries[i].ID] = i
	}

	// Keep the similarity order from the vector search.
	results := make([]response_models.SemanticSearchHit, 0, len(hits))
	for _, hit := range hits {
		idx, ok := byID[hit.ItineraryID]
		if !ok {
			continue
		}
		results = append(results, response_models.SemanticSearchHit{
			Itinerary:  buildItinerarySummary(itineraries[idx]),
			Similarity: hit.Similarity,
		})
	}

	return results, nil
}
