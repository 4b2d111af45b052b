package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, agencyID uuid.UUID, request request_models.CreateInquiryRequest) (string, error)
	UpdateInquiryPayload(ctx context.Context, agencyID uuid.UUID, id string, inquiry request_models.Inquiry) error
	GetInquiryById(ctx context.Context, agencyID uuid.UUID, id string) (*response_models.InquiryResponse, error)
	ListInquiries(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]response_models.InquiryResponse, error)

	// GetStructuredInquiry loads the stored payload for the matching engine.
	GetStructuredInquiry(ctx context.Context, agencyID uuid.UUID, id string) (*request_models.Inquiry, error)
	RecordDecision(ctx context.Context, agencyID uuid.UUID, id string, action string) error
}

type InquiryService struct {
	inquiryRepo repositories.InquiryRepository
	extractor   utils.InquiryExtractorInterface
}

func NewInquiryService(
	inquiryRepo repositories.InquiryRepository,
	extractor utils.InquiryExtractorInterface,
) InquiryServiceInterface {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		extractor:   extractor,
	}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, agencyID uuid.UUID, request request_models.CreateInquiryRequest) (string, error) {

	structured := request.Inquiry
	if structured == nil {
		if request.RawText == "" {
			return "", utils.ErrInvalidInput
		}

		extracted, err := s.extractor.ExtractInquiry(ctx, request.RawText)
		if err != nil {
			log.Printf("Error extracting inquiry: %v", err)
			return "", utils.ErrUnexpectedAIOutput
		}
		structured = extracted
	}

	payload, err := json.Marshal(structured)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	inquiry := &db_models.Inquiry{
		AgencyID:      agencyID,
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		RawText:       request.RawText,
		Payload:       payload,
		Status:        db_models.InquiryStatusNew,
	}

	id, err := s.inquiryRepo.CreateInquiry(ctx, inquiry)
	if err != nil {
		log.Printf("Error creating inquiry: %v", err)
		return "", utils.ErrDatabaseError
	}

	return id.String(), nil
}

func (s *InquiryService) UpdateInquiryPayload(ctx context.Context, agencyID uuid.UUID, id string, inquiry request_models.Inquiry) error {

	existing, err := s.inquiryRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		log.Printf("Error fetching inquiry: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrInquiryNotFound
	}

	payload, err := json.Marshal(inquiry)
	if err != nil {
		return utils.ErrInvalidInput
	}

	existing.Payload = payload
	existing.Status = db_models.InquiryStatusQualified

	if err := s.inquiryRepo.UpdateInquiry(ctx, existing); err != nil {
		log.Printf("Error updating inquiry: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *InquiryService) GetInquiryById(ctx context.Context, agencyID uuid.UUID, id string) (*response_models.InquiryResponse, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if inquiry == nil {
		return nil, utils.ErrInquiryNotFound
	}

	return buildInquiryResponse(inquiry), nil
}

func (s *InquiryService) ListInquiries(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]response_models.InquiryResponse, error) {

	inquiries, err := s.inquiryRepo.List(ctx, agencyID, page, pageSize)
	if err != nil {
		log.Printf("Error listing inquiries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		responses = append(responses, *buildInquiryResponse(&inquiries[i]))
	}
	return responses, nil
}

func (s *InquiryService) GetStructuredInquiry(ctx context.Context, agencyID uuid.UUID, id string) (*request_models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if inquiry == nil {
		return nil, utils.ErrInquiryNotFound
	}

	var structured request_models.Inquiry
	if len(inquiry.Payload) > 0 {
		if err := json.Unmarshal(inquiry.Payload, &structured); err != nil {
			log.Printf("Error decoding inquiry payload %s: %v", id, err)
			return nil, utils.ErrInvalidInput
		}
	}

	return &structured, nil
}

func (s *InquiryService) RecordDecision(ctx context.Context, agencyID uuid.UUID, id string, action string) error {
	inquiry, err := s.inquiryRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if inquiry == nil {
		return utils.ErrInquiryNotFound
	}

	inquiry.LastDecisionAction = action
	switch action {
	case response_models.ActionSendItineraries, response_models.ActionSendItinerariesWithCaveat:
		inquiry.Status = db_models.InquiryStatusMatched
	case response_models.ActionForwardToSupplier:
		inquiry.Status = db_models.InquiryStatusForwarded
	}

	if err := s.inquiryRepo.UpdateInquiry(ctx, inquiry); err != nil {
		log.Printf("Error recording decision on inquiry %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func buildInquiryResponse(inquiry *db_models.Inquiry) *response_models.InquiryResponse {
	response := &response_models.InquiryResponse{
		ID:                 inquiry.ID.String(),
		CustomerName:       inquiry.CustomerName,
		CustomerEmail:      inquiry.CustomerEmail,
		Status:             inquiry.Status,
		LastDecisionAction: inquiry.LastDecisionAction,
		CreatedAt:          inquiry.CreatedAt,
	}

	if len(inquiry.Payload) > 0 {
		var structured request_models.Inquiry
		if err := json.Unmarshal(inquiry.Payload, &structured); err == nil {
			response.Inquiry = &structured
		}
	}

	return response
}
