package conversation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
)

var Module = fx.Provide(
	provideConversationRepo, provideConversationService)

func provideConversationRepo(db *gorm.DB) repositories.AIConversationRepository {
	return repositories.NewAIConversationRepository(db)
}

func provideConversationService(conversationRepo repositories.AIConversationRepository) services.ConversationServiceInterface {
	return services.NewConversationService(conversationRepo)
}
