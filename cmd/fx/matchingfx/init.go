package matchingfx

import (
	"go.uber.org/fx"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideValidationService, provideScoringService, provideWorkflowService, provideMatchingService)

func provideValidationService() services.ValidationServiceInterface {
	return services.NewValidationService()
}

func provideScoringService() services.ScoringServiceInterface {
	return services.NewScoringService(services.DefaultScoringWeights())
}

func provideWorkflowService() services.WorkflowServiceInterface {
	return services.NewWorkflowService()
}

func provideMatchingService(
	validator services.ValidationServiceInterface,
	scorer services.ScoringServiceInterface,
	workflow services.WorkflowServiceInterface,
	itineraryRepo repositories.ItineraryRepository,
) services.MatchingServiceInterface {
	return services.NewMatchingService(validator, scorer, workflow, itineraryRepo)
}
