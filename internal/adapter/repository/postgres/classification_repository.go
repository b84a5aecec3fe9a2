package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
)

type classificationRepository struct {
	db *gorm.DB
}

// NewClassificationRepository creates a new classification repository
func NewClassificationRepository(db *gorm.DB) repository.ClassificationRepository {
	return &classificationRepository{db: db}
}

func (r *classificationRepository) Create(ctx context.Context, classification *entity.Classification) error {
	return r.db.WithContext(ctx).Create(classification).Error
}

func (r *classificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Classification, error) {
	var classification entity.Classification
	err := r.db.WithContext(ctx).First(&classification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &classification, nil
}

func (r *classificationRepository) List(ctx context.Context, limit, offset int) ([]*entity.Classification, int64, error) {
	var classifications []*entity.Classification
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Classification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&classifications).Error
	if err != nil {
		return nil, 0, err
	}

	return classifications, total, nil
}
