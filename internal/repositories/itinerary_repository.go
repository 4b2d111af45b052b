package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripdesk/internal/models/db_models"
)

// CandidateQuery narrows the inventory before scoring. Empty/nil fields
// disable the corresponding filter.
type CandidateQuery struct {
	Destination string
	// DurationDays enables the ±DurationWindow retrieval pre-filter.
	DurationDays   *int
	DurationWindow int
	Limit          int
}

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error)
	UpdateItinerary(ctx context.Context, itinerary *db_models.Itinerary) error
	Delete(ctx context.Context, agencyID, id uuid.UUID) error

	GetByID(ctx context.Context, agencyID uuid.UUID, id string) (*db_models.Itinerary, error)
	GetByIDs(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]db_models.Itinerary, error)
	List(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error)

	// FindCandidates returns bookable itineraries for one agency, oldest
	// first so retrieval order is deterministic.
	FindCandidates(ctx context.Context, agencyID uuid.UUID, query CandidateQuery) ([]db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) UpdateItinerary(ctx context.Context, itinerary *db_models.Itinerary) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(itinerary)
		if result.Error != nil {
			return fmt.Errorf("failed to update itinerary: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *itineraryRepository) Delete(ctx context.Context, agencyID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Delete(&db_models.Itinerary{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a default value and nil error when no rows are found.

func (r *itineraryRepository) GetByID(ctx context.Context, agencyID uuid.UUID, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) GetByIDs(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]db_models.Itinerary, error) {
	if len(ids) == 0 {
		return []db_models.Itinerary{}, nil
	}

	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Where("id IN ?", ids).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) List(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) FindCandidates(ctx context.Context, agencyID uuid.UUID, query CandidateQuery) ([]db_models.Itinerary, error) {
	db := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Where("status IN ?", []string{db_models.ItineraryStatusActive, db_models.ItineraryStatusPublished})

	if query.Destination != "" {
		pattern := "%" + strings.ToLower(query.Destination) + "%"
		db = db.Where(
			"(LOWER(destination_country) LIKE ? OR LOWER(destination_city) LIKE ? OR LOWER(array_to_string(additional_destinations, ',')) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	if query.DurationDays != nil && query.DurationWindow >= 0 {
		db = db.Where(
			"duration_days BETWEEN ? AND ?",
			*query.DurationDays-query.DurationWindow,
			*query.DurationDays+query.DurationWindow,
		)
	}

	var itineraries []db_models.Itinerary
	err := db.Order("created_at ASC").
		Limit(query.Limit).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}
