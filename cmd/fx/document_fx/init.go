package document_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
	"healthtrack/pkg/events"
)

var Module = fx.Provide(
	provideDocumentRepo, provideDocumentService)

func provideDocumentRepo(db *gorm.DB) repositories.MedicalDocumentRepository {
	return repositories.NewMedicalDocumentRepository(db)
}

func provideDocumentService(documentRepo repositories.MedicalDocumentRepository, publisher events.Publisher, log *logrus.Logger) services.DocumentServiceInterface {
	return services.NewDocumentService(documentRepo, publisher, log)
}
