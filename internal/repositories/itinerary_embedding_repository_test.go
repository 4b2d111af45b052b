package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"tripdesk/internal/models/db_models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

// The upsert must insert the embedding record itself, not a blank row: a
// created row with a zero itinerary_id can never be hydrated by FindNearest
// and collides with the unique index on every later upsert.
func TestUpsertEmbedding_CreateKeepsItineraryID(t *testing.T) {
	db := dryRunDB(t)

	var created *db_models.ItineraryEmbedding
	err := db.Callback().Create().Before("gorm:create").Register("capture_create_dest", func(tx *gorm.DB) {
		if rec, ok := tx.Statement.Dest.(*db_models.ItineraryEmbedding); ok {
			created = rec
		}
	})
	require.NoError(t, err)

	repo := NewItineraryEmbeddingRepository(db)

	embedding := &db_models.ItineraryEmbedding{
		ItineraryID: uuid.New(),
		AgencyID:    uuid.New(),
		SourceText:  "Kyoto & Osaka Highlights Kyoto Osaka culture food",
		Embedding:   pgvector.NewVector([]float32{0.1, 0.2, 0.3}),
	}

	require.NoError(t, repo.UpsertEmbedding(context.Background(), embedding))

	require.NotNil(t, created)
	assert.Same(t, embedding, created)
	assert.Equal(t, embedding.ItineraryID, created.ItineraryID)
	assert.Equal(t, embedding.AgencyID, created.AgencyID)
	assert.Equal(t, embedding.SourceText, created.SourceText)
}
