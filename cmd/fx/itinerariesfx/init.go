package itinerariesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo, provideEmbeddingRepo, provideEmbeddingClient, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.ItineraryEmbeddingRepository {
	return repositories.NewItineraryEmbeddingRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient()
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	embeddingRepo repositories.ItineraryEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, embeddingRepo, embedder)
}
