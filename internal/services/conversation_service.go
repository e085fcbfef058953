package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/internal/repositories"
	"healthtrack/pkg/utils"
)

type ConversationServiceInterface interface {
	ListConversations(ctx context.Context, userID uint) ([]db_models.AIConversation, error)
	CreateConversation(ctx context.Context, userID uint, request request_models.CreateConversationRequest) (*db_models.AIConversation, error)
	UpdateConversation(ctx context.Context, id, userID uint, request request_models.UpdateConversationRequest) (*db_models.AIConversation, error)
}

type ConversationService struct {
	conversationRepo repositories.AIConversationRepository
}

func NewConversationService(conversationRepo repositories.AIConversationRepository) ConversationServiceInterface {
	return &ConversationService{conversationRepo: conversationRepo}
}

func (s *ConversationService) ListConversations(ctx context.Context, userID uint) ([]db_models.AIConversation, error) {
	conversations, err := s.conversationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(conversations), nil
}

func (s *ConversationService) CreateConversation(ctx context.Context, userID uint, request request_models.CreateConversationRequest) (*db_models.AIConversation, error) {
	conversation := &db_models.AIConversation{
		UserID:            userID,
		SessionID:         request.SessionID,
		Messages:          jsonOrNil(request.Messages),
		Symptoms:          request.Symptoms,
		Recommendations:   jsonOrNil(request.Recommendations),
		EscalatedToDoctor: request.EscalatedToDoctor,
	}
	if conversation.SessionID == "" {
		conversation.SessionID = uuid.NewString()
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return conversation, nil
}

// UpdateConversation writes only the fields present in the request.
func (s *ConversationService) UpdateConversation(ctx context.Context, id, userID uint, request request_models.UpdateConversationRequest) (*db_models.AIConversation, error) {
	changes := map[string]interface{}{}
	if hasJSON(request.Messages) {
		changes["messages"] = jsonOrNil(request.Messages)
	}
	if request.Symptoms != nil {
		changes["symptoms"] = pq.StringArray(request.Symptoms)
	}
	if hasJSON(request.Recommendations) {
		changes["recommendations"] = jsonOrNil(request.Recommendations)
	}
	if request.EscalatedToDoctor != nil {
		changes["escalated_to_doctor"] = *request.EscalatedToDoctor
	}

	conversation, err := s.conversationRepo.Update(ctx, id, userID, changes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if conversation == nil {
		return nil, utils.ErrConversationNotFound
	}
	return conversation, nil
}
