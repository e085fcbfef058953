package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{conversationService: conversationService}
}

func (cc *ConversationController) ListConversations(c *gin.Context) {
	conversations, err := cc.conversationService.ListConversations(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch AI conversations")
		return
	}
	utils.RespondSuccess(c, conversations)
}

func (cc *ConversationController) CreateConversation(c *gin.Context) {
	var req request_models.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	conversation, err := cc.conversationService.CreateConversation(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to create AI conversation")
		return
	}
	utils.RespondSuccess(c, conversation)
}

func (cc *ConversationController) UpdateConversation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to update AI conversation")
		return
	}

	var req request_models.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	conversation, err := cc.conversationService.UpdateConversation(c.Request.Context(), id, middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to update AI conversation")
		return
	}
	utils.RespondSuccess(c, conversation)
}
