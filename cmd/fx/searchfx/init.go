package searchfx

import (
	"go.uber.org/fx"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	provideSearchService)

func provideSearchService(
	embedder utils.EmbeddingClientInterface,
	embeddingRepo repositories.ItineraryEmbeddingRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.SearchServiceInterface {
	return services.NewSearchService(embedder, embeddingRepo, itineraryRepo)
}
