package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ItineraryEmbedding struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AgencyID    uuid.UUID `gorm:"type:uuid;index"`

	// Text that was embedded (title + destinations + themes), kept for
	// re-embedding when the model changes.
	SourceText string

	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
