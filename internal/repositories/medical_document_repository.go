package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"healthtrack/internal/models/db_models"
)

type MedicalDocumentRepository interface {
	Create(ctx context.Context, document *db_models.MedicalDocument) error
	ListByUser(ctx context.Context, userID uint) ([]db_models.MedicalDocument, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (*db_models.MedicalDocument, error)
	CreateShare(ctx context.Context, share *db_models.DocumentShare) error
	ListShares(ctx context.Context, documentID uint) ([]db_models.DocumentShare, error)
}

type medicalDocumentRepository struct {
	db *gorm.DB
}

func NewMedicalDocumentRepository(db *gorm.DB) MedicalDocumentRepository {
	return &medicalDocumentRepository{db: db}
}

func (m *medicalDocumentRepository) Create(ctx context.Context, document *db_models.MedicalDocument) error {
	return m.db.WithContext(ctx).Create(document).Error
}

func (m *medicalDocumentRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.MedicalDocument, error) {
	var documents []db_models.MedicalDocument
	err := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_date DESC").
		Find(&documents).Error
	return documents, err
}

func (m *medicalDocumentRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*db_models.MedicalDocument, error) {
	var document db_models.MedicalDocument
	err := m.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

// CreateShare records the share and flags the document as shared in one
// transaction.
func (m *medicalDocumentRepository) CreateShare(ctx context.Context, share *db_models.DocumentShare) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(share).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.MedicalDocument{}).
			Where("id = ?", share.DocumentID).
			Update("is_shared", true).Error
	})
}

func (m *medicalDocumentRepository) ListShares(ctx context.Context, documentID uint) ([]db_models.DocumentShare, error) {
	var shares []db_models.DocumentShare
	err := m.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		Find(&shares).Error
	return shares, err
}
