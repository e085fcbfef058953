package appointment_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
	"healthtrack/pkg/events"
)

var Module = fx.Provide(
	provideAppointmentRepo, provideAppointmentService)

func provideAppointmentRepo(db *gorm.DB) repositories.AppointmentRepository {
	return repositories.NewAppointmentRepository(db)
}

func provideAppointmentService(appointmentRepo repositories.AppointmentRepository, publisher events.Publisher, log *logrus.Logger) services.AppointmentServiceInterface {
	return services.NewAppointmentService(appointmentRepo, publisher, log)
}
