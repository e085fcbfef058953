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

type AppointmentServiceInterface interface {
	ListForPatient(ctx context.Context, patientID uint) ([]db_models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID uint) ([]db_models.Appointment, error)
	CreateAppointment(ctx context.Context, patientID uint, request request_models.CreateAppointmentRequest) (*db_models.Appointment, error)
	UpdateStatus(ctx context.Context, id, userID uint, status string) (*db_models.Appointment, error)
}

type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	publisher       events.Publisher
	log             *logrus.Logger
}

func NewAppointmentService(appointmentRepo repositories.AppointmentRepository, publisher events.Publisher, log *logrus.Logger) AppointmentServiceInterface {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
		log:             log,
	}
}

func (a *AppointmentService) ListForPatient(ctx context.Context, patientID uint) ([]db_models.Appointment, error) {
	appointments, err := a.appointmentRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(appointments), nil
}

func (a *AppointmentService) ListForDoctor(ctx context.Context, doctorID uint) ([]db_models.Appointment, error) {
	appointments, err := a.appointmentRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(appointments), nil
}

func (a *AppointmentService) CreateAppointment(ctx context.Context, patientID uint, request request_models.CreateAppointmentRequest) (*db_models.Appointment, error) {
	appointment := &db_models.Appointment{
		PatientID:       patientID,
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		Duration:        request.Duration,
		Status:          db_models.AppointmentStatus(request.Status),
		Type:            request.Type,
		Notes:           request.Notes,
		Price:           request.Price,
		IsPaid:          request.IsPaid,
	}
	if appointment.Duration == 0 {
		appointment.Duration = 30
	}
	if appointment.Status == "" {
		appointment.Status = db_models.AppointmentScheduled
	}
	if appointment.Type == "" {
		appointment.Type = "consultation"
	}

	if err := a.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return appointment, nil
}

// UpdateStatus changes the status of an appointment the user is patient or
// doctor of. An id that matches nothing is ErrAppointmentNotFound.
func (a *AppointmentService) UpdateStatus(ctx context.Context, id, userID uint, status string) (*db_models.Appointment, error) {
	appointment, err := a.appointmentRepo.UpdateStatus(ctx, id, userID, db_models.AppointmentStatus(status))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if appointment == nil {
		return nil, utils.ErrAppointmentNotFound
	}

	publish(ctx, a.publisher, a.log, events.AppointmentStatusChange, map[string]interface{}{
		"id":        appointment.ID,
		"patientId": appointment.PatientID,
		"doctorId":  appointment.DoctorID,
		"status":    appointment.Status,
		"changedBy": userID,
	})
	return appointment, nil
}
