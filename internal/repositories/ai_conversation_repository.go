package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthtrack/internal/models/db_models"
)

type AIConversationRepository interface {
	Create(ctx context.Context, conversation *db_models.AIConversation) error
	ListByUser(ctx context.Context, userID uint) ([]db_models.AIConversation, error)
	// Update applies changes to a conversation owned by userID and returns
	// the stored row, or nil when none matched.
	Update(ctx context.Context, id, userID uint, changes map[string]interface{}) (*db_models.AIConversation, error)
}

type aiConversationRepository struct {
	db *gorm.DB
}

func NewAIConversationRepository(db *gorm.DB) AIConversationRepository {
	return &aiConversationRepository{db: db}
}

func (a *aiConversationRepository) Create(ctx context.Context, conversation *db_models.AIConversation) error {
	return a.db.WithContext(ctx).Create(conversation).Error
}

func (a *aiConversationRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.AIConversation, error) {
	var conversations []db_models.AIConversation
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (a *aiConversationRepository) Update(ctx context.Context, id, userID uint, changes map[string]interface{}) (*db_models.AIConversation, error) {
	var conversation db_models.AIConversation
	res := a.db.WithContext(ctx).
		Model(&conversation).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &conversation, nil
}
