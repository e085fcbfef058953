package repositories

import (
	"context"

	"gorm.io/gorm"

	"healthtrack/internal/models/db_models"
)

type HRVRepository interface {
	Create(ctx context.Context, sample *db_models.HRVData) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]db_models.HRVData, error)
}

type HRVRepositoryImpl struct {
	db *gorm.DB
}

func NewHRVRepository(db *gorm.DB) HRVRepository {
	return &HRVRepositoryImpl{db: db}
}

func (h *HRVRepositoryImpl) Create(ctx context.Context, sample *db_models.HRVData) error {
	return h.db.WithContext(ctx).Create(sample).Error
}

func (h *HRVRepositoryImpl) ListByUser(ctx context.Context, userID uint, limit int) ([]db_models.HRVData, error) {
	var samples []db_models.HRVData
	err := h.db.WithContext(ctx).
		Scopes(limitScope(limit)).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&samples).Error
	return samples, err
}
