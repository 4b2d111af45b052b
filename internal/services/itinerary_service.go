package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, agencyID uuid.UUID, request request_models.CreateItineraryRequest) (string, error)
	UpdateItinerary(ctx context.Context, agencyID uuid.UUID, request request_models.UpdateItineraryRequest) error
	DeleteItinerary(ctx context.Context, agencyID, id uuid.UUID) error
	GetItineraryById(ctx context.Context, agencyID uuid.UUID, id string) (response_models.ItinerarySummary, error)
	ListItineraries(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]response_models.ItinerarySummary, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	embeddingRepo repositories.ItineraryEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	embeddingRepo repositories.ItineraryEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, agencyID uuid.UUID, request request_models.CreateItineraryRequest) (string, error) {

	status := request.Status
	if status == "" {
		status = db_models.ItineraryStatusDraft
	}
	if !validItineraryStatus(status) {
		return "", utils.ErrInvalidInput
	}

	itinerary := &db_models.Itinerary{
		AgencyID:               agencyID,
		Title:                  request.Title,
		DestinationCountry:     request.DestinationCountry,
		DestinationCity:        request.DestinationCity,
		AdditionalDestinations: request.AdditionalDestinations,
		DurationDays:           request.DurationDays,
		EstimatedCostAmount:    request.EstimatedCostAmount,
		EstimatedCostCurrency:  request.EstimatedCostCurrency,
		TravelStyle:            request.TravelStyle,
		Themes:                 request.Themes,
		Highlights:             request.Highlights,
		CapacityMin:            request.CapacityMin,
		CapacityMax:            request.CapacityMax,
		Status:                 status,
	}

	id, err := s.itineraryRepo.CreateItinerary(ctx, itinerary)
	if err != nil {
		log.Printf("Error creating itinerary: %v", err)
		return "", utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, itinerary)

	return id.String(), nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, agencyID uuid.UUID, request request_models.UpdateItineraryRequest) error {

	existing, err := s.itineraryRepo.GetByID(ctx, agencyID, request.ID.String())
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}

	if request.Status != "" && !validItineraryStatus(request.Status) {
		return utils.ErrInvalidInput
	}

	existing.Title = request.Title
	existing.DestinationCountry = request.DestinationCountry
	existing.DestinationCity = request.DestinationCity
	existing.AdditionalDestinations = request.AdditionalDestinations
	existing.DurationDays = request.DurationDays
	existing.EstimatedCostAmount = request.EstimatedCostAmount
	existing.EstimatedCostCurrency = request.EstimatedCostCurrency
	existing.TravelStyle = request.TravelStyle
	existing.Themes = request.Themes
	existing.Highlights = request.Highlights
	existing.CapacityMin = request.CapacityMin
	existing.CapacityMax = request.CapacityMax
	if request.Status != "" {
		existing.Status = request.Status
	}

	if err := s.itineraryRepo.UpdateItinerary(ctx, existing); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, existing)

	return nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, agencyID, id uuid.UUID) error {

	existing, err := s.itineraryRepo.GetByID(ctx, agencyID, id.String())
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}

	if err := s.itineraryRepo.Delete(ctx, agencyID, id); err != nil {
		log.Printf("Error deleting itinerary: %v", err)
		return utils.ErrDatabaseError
	}

	if err := s.embeddingRepo.DeleteByItineraryID(ctx, id); err != nil {
		log.Printf("Error deleting itinerary embedding: %v", err)
	}

	return nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, agencyID uuid.UUID, id string) (response_models.ItinerarySummary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return response_models.ItinerarySummary{}, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return response_models.ItinerarySummary{}, utils.ErrItineraryNotFound
	}

	return buildItinerarySummary(*itinerary), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]response_models.ItinerarySummary, error) {

	itineraries, err := s.itineraryRepo.List(ctx, agencyID, page, pageSize)
	if err != nil {
		log.Printf("Error listing itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		summaries = append(summaries, buildItinerarySummary(itinerary))
	}
	return summaries, nil
}

// refreshEmbedding recomputes the semantic-search vector after a write.
// Embedding failures only cost search freshness, they never fail the write.
func (s *ItineraryService) refreshEmbedding(ctx context.Context, itinerary *db_models.Itinerary) {
	sourceText := embeddingSourceText(itinerary)

	vector, err := s.embedder.GetEmbedding(ctx, sourceText)
	if err != nil {
		log.Printf("Error embedding itinerary %s: %v", itinerary.ID, err)
		return
	}

	err = s.embeddingRepo.UpsertEmbedding(ctx, &db_models.ItineraryEmbedding{
		ItineraryID: itinerary.ID,
		AgencyID:    itinerary.AgencyID,
		SourceText:  sourceText,
		Embedding:   vector,
	})
	if err != nil {
		log.Printf("Error storing itinerary embedding %s: %v", itinerary.ID, err)
	}
}

func embeddingSourceText(itinerary *db_models.Itinerary) string {
	parts := []string{itinerary.Title, itinerary.DestinationCountry, itinerary.DestinationCity}
	parts = append(parts, itinerary.AdditionalDestinations...)
	parts = append(parts, itinerary.TravelStyle)
	parts = append(parts, itinerary.Themes...)
	parts = append(parts, itinerary.Highlights...)

	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

func validItineraryStatus(status string) bool {
	switch status {
	case db_models.ItineraryStatusDraft,
		db_models.ItineraryStatusActive,
		db_models.ItineraryStatusPublished,
		db_models.ItineraryStatusArchived:
		return true
	}
	return false
}

func buildItinerarySummary(itinerary db_models.Itinerary) response_models.ItinerarySummary {
	return response_models.ItinerarySummary{
		ID:                     itinerary.ID.String(),
		Title:                  itinerary.Title,
		DestinationCountry:     itinerary.DestinationCountry,
		DestinationCity:        itinerary.DestinationCity,
		AdditionalDestinations: itinerary.AdditionalDestinations,
		DurationDays:           itinerary.DurationDays,
		EstimatedCostAmount:    itinerary.EstimatedCostAmount,
		EstimatedCostCurrency:  itinerary.EstimatedCostCurrency,
		TravelStyle:            itinerary.TravelStyle,
		Themes:                 itinerary.Themes,
		Highlights:             itinerary.Highlights,
		CapacityMin:            itinerary.CapacityMin,
		CapacityMax:            itinerary.CapacityMax,
		Status:                 itinerary.Status,
	}
}
