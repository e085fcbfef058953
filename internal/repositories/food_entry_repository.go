package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"healthtrack/internal/models/db_models"
)

type FoodEntryRepository interface {
	Create(ctx context.Context, entry *db_models.FoodEntry) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*db_models.FoodEntry, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]db_models.FoodEntry, error)
	ListByUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]db_models.FoodEntry, error)
	CreateReaction(ctx context.Context, reaction *db_models.FoodReaction) error
	ListReactionsByUser(ctx context.Context, userID uint, limit int) ([]db_models.FoodReaction, error)
}

type foodEntryRepository struct {
	db *gorm.DB
}

func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db: db}
}

func (f *foodEntryRepository) Create(ctx context.Context, entry *db_models.FoodEntry) error {
	return f.db.WithContext(ctx).Create(entry).Error
}

func (f *foodEntryRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*db_models.FoodEntry, error) {
	var entry db_models.FoodEntry
	err := f.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (f *foodEntryRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]db_models.FoodEntry, error) {
	var entries []db_models.FoodEntry
	err := f.db.WithContext(ctx).
		Scopes(limitScope(limit)).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

// ListByUserInRange returns entries with start <= timestamp <= end.
func (f *foodEntryRepository) ListByUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]db_models.FoodEntry, error) {
	var entries []db_models.FoodEntry
	err := f.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (f *foodEntryRepository) CreateReaction(ctx context.Context, reaction *db_models.FoodReaction) error {
	return f.db.WithContext(ctx).Create(reaction).Error
}

func (f *foodEntryRepository) ListReactionsByUser(ctx context.Context, userID uint, limit int) ([]db_models.FoodReaction, error) {
	var reactions []db_models.FoodReaction
	err := f.db.WithContext(ctx).
		Scopes(limitScope(limit)).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&reactions).Error
	return reactions, err
}
