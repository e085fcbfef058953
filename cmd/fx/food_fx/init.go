package food_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
	"healthtrack/pkg/events"
)

var Module = fx.Provide(
	provideFoodRepo, provideFoodService)

func provideFoodRepo(db *gorm.DB) repositories.FoodEntryRepository {
	return repositories.NewFoodEntryRepository(db)
}

func provideFoodService(foodRepo repositories.FoodEntryRepository, publisher events.Publisher, log *logrus.Logger) services.FoodServiceInterface {
	return services.NewFoodService(foodRepo, publisher, log)
}
