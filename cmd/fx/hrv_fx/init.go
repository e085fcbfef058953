package hrv_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
)

var Module = fx.Provide(
	provideHRVRepo, provideHRVService)

func provideHRVRepo(db *gorm.DB) repositories.HRVRepository {
	return repositories.NewHRVRepository(db)
}

func provideHRVService(hrvRepo repositories.HRVRepository) services.HRVServiceInterface {
	return services.NewHRVService(hrvRepo)
}
