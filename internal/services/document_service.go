package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/internal/repositories"
	"healthtrack/pkg/events"
	"healthtrack/pkg/utils"
)

type DocumentServiceInterface interface {
	ListDocuments(ctx context.Context, userID uint) ([]db_models.MedicalDocument, error)
	CreateDocument(ctx context.Context, userID uint, request request_models.CreateMedicalDocumentRequest) (*db_models.MedicalDocument, error)
	ShareDocument(ctx context.Context, documentID, userID uint, request request_models.ShareDocumentRequest) (*db_models.DocumentShare, error)
	ListShares(ctx context.Context, documentID, userID uint) ([]db_models.DocumentShare, error)
}

type DocumentService struct {
	documentRepo repositories.MedicalDocumentRepository
	publisher    events.Publisher
	log          *logrus.Logger
}

func NewDocumentService(documentRepo repositories.MedicalDocumentRepository, publisher events.Publisher, log *logrus.Logger) DocumentServiceInterface {
	return &DocumentService{
		documentRepo: documentRepo,
		publisher:    publisher,
		log:          log,
	}
}

func (d *DocumentService) ListDocuments(ctx context.Context, userID uint) ([]db_models.MedicalDocument, error) {
	documents, err := d.documentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(documents), nil
}

func (d *DocumentService) CreateDocument(ctx context.Context, userID uint, request request_models.CreateMedicalDocumentRequest) (*db_models.MedicalDocument, error) {
	document := &db_models.MedicalDocument{
		UserID:        userID,
		DocumentType:  request.DocumentType,
		Title:         request.Title,
		Description:   request.Description,
		FileURL:       request.FileURL,
		FileSize:      request.FileSize,
		MimeType:      request.MimeType,
		EncryptionKey: request.EncryptionKey,
		DocumentDate:  request.DocumentDate,
		DoctorName:    request.DoctorName,
		FacilityName:  request.FacilityName,
		Tags:          request.Tags,
	}
	if err := d.documentRepo.Create(ctx, document); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return document, nil
}

func (d *DocumentService) ShareDocument(ctx context.Context, documentID, userID uint, request request_models.ShareDocumentRequest) (*db_models.DocumentShare, error) {
	if _, err := d.ownedDocument(ctx, documentID, userID); err != nil {
		return nil, err
	}

	share := &db_models.DocumentShare{
		DocumentID:       documentID,
		SharedWithUserID: request.SharedWithUserID,
		AccessLevel:      db_models.AccessLevel(request.AccessLevel),
		ExpiresAt:        request.ExpiresAt,
	}
	if err := d.documentRepo.CreateShare(ctx, share); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	publish(ctx, d.publisher, d.log, events.DocumentShared, map[string]interface{}{
		"documentId":       share.DocumentID,
		"ownerId":          userID,
		"sharedWithUserId": share.SharedWithUserID,
		"accessLevel":      share.AccessLevel,
	})
	return share, nil
}

func (d *DocumentService) ListShares(ctx context.Context, documentID, userID uint) ([]db_models.DocumentShare, error) {
	if _, err := d.ownedDocument(ctx, documentID, userID); err != nil {
		return nil, err
	}
	shares, err := d.documentRepo.ListShares(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(shares), nil
}

func (d *DocumentService) ownedDocument(ctx context.Context, documentID, userID uint) (*db_models.MedicalDocument, error) {
	document, err := d.documentRepo.FindByIDForUser(ctx, documentID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if document == nil {
		return nil, utils.ErrDocumentNotFound
	}
	return document, nil
}
