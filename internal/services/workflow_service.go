package services

import (
	"tripdesk/internal/models/response_models"
)

const (
	// Fixed note attached when matches land in the caveat band.
	caveatNote = "These itineraries are close to your request and can be customized to fit it exactly."

	// Fixed note attached when the inquiry is forwarded for a custom build.
	supplierNote = "No stock itinerary fits this inquiry; a custom itinerary will be created."
)

type WorkflowServiceInterface interface {
	// Decide maps a validation result and ranked matches to exactly one
	// workflow action. Stateless four-branch decision table.
	Decide(validation response_models.ValidationResult, ranked []response_models.MatchResult) response_models.WorkflowDecision
}

type WorkflowService struct{}

func NewWorkflowService() WorkflowServiceInterface {
	return &WorkflowService{}
}

func (w *WorkflowService) Decide(validation response_models.ValidationResult, ranked []response_models.MatchResult) response_models.WorkflowDecision {
	if !validation.IsValid {
		return response_models.WorkflowDecision{
			Action:        response_models.ActionAskCustomer,
			MissingFields: validation.MissingFields,
		}
	}

	if len(ranked) > 0 {
		best := ranked[0].Score
		top := ranked
		if len(top) > TopMatchesLimit {
			top = top[:TopMatchesLimit]
		}

		if best >= StrongMatchThreshold {
			return response_models.WorkflowDecision{
				Action:    response_models.ActionSendItineraries,
				Matches:   top,
				BestScore: best,
			}
		}

		// The ranker already enforced the acceptance floor, so anything
		// left sits in the [floor, threshold) caveat band.
		return response_models.WorkflowDecision{
			Action:    response_models.ActionSendItinerariesWithCaveat,
			Matches:   top,
			BestScore: best,
			Note:      caveatNote,
		}
	}

	return response_models.WorkflowDecision{
		Action:         response_models.ActionForwardToSupplier,
		OptionalFields: validation.OptionalFields,
		Note:           supplierNote,
	}
}
