package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"tripdesk/internal/models/db_models"
)

type EmbeddingHit struct {
	db_models.ItineraryEmbedding
	Similarity float64
}

type ItineraryEmbeddingRepository interface {
	UpsertEmbedding(ctx context.Context, embedding *db_models.ItineraryEmbedding) error
	DeleteByItineraryID(ctx context.Context, itineraryID uuid.UUID) error
	FindNearest(ctx context.Context, agencyID uuid.UUID, vector pgvector.Vector, limit int) ([]EmbeddingHit, error)
}

type itineraryEmbeddingRepository struct {
	db *gorm.DB
}

func NewItineraryEmbeddingRepository(db *gorm.DB) ItineraryEmbeddingRepository {
	return &itineraryEmbeddingRepository{db: db}
}

func (r *itineraryEmbeddingRepository) UpsertEmbedding(ctx context.Context, embedding *db_models.ItineraryEmbedding) error {
	return r.db.WithContext(ctx).
		Where(db_models.ItineraryEmbedding{ItineraryID: embedding.ItineraryID}).
		Assign(map[string]interface{}{
			"agency_id":   embedding.AgencyID,
			"source_text": embedding.SourceText,
			"embedding":   embedding.Embedding,
		}).
		FirstOrCreate(embedding).Error
}

func (r *itineraryEmbeddingRepository) DeleteByItineraryID(ctx context.Context, itineraryID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.ItineraryEmbedding{}, "itinerary_id = ?", itineraryID).Error
}

func (r *itineraryEmbeddingRepository) FindNearest(ctx context.Context, agencyID uuid.UUID, vector pgvector.Vector, limit int) ([]EmbeddingHit, error) {
	if limit <= 0 || limit > 15 {
		limit = 15
	}

	var results []EmbeddingHit

	query := `
        SELECT *, (1 - (embedding <=> $1)) AS similarity
        FROM itinerary_embeddings
        WHERE agency_id = $2
          AND (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), agencyID, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
