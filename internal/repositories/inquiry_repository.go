package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripdesk/internal/models/db_models"
)

type InquiryRepository interface {
	CreateInquiry(ctx context.Context, inquiry *db_models.Inquiry) (uuid.UUID, error)
	UpdateInquiry(ctx context.Context, inquiry *db_models.Inquiry) error

	GetByID(ctx context.Context, agencyID uuid.UUID, id string) (*db_models.Inquiry, error)
	List(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]db_models.Inquiry, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) CreateInquiry(ctx context.Context, inquiry *db_models.Inquiry) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return uuid.Nil, err
	}
	return inquiry.ID, nil
}

func (r *inquiryRepository) UpdateInquiry(ctx context.Context, inquiry *db_models.Inquiry) error {
	result := r.db.WithContext(ctx).Save(inquiry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, agencyID uuid.UUID, id string) (*db_models.Inquiry, error) {
	var inquiry db_models.Inquiry
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		First(&inquiry, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context, agencyID uuid.UUID, page, pageSize int) ([]db_models.Inquiry, error) {
	var inquiries []db_models.Inquiry
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}
