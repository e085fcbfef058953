package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/config"
	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
	mem "healthtrack/pkg/memcache"
	"healthtrack/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo, provideTokenManager)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenManager(cfg config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
}

func provideAccountService(userRepo repositories.UserRepository, tokens *utils.TokenManager, revoked mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, tokens, revoked)
}
