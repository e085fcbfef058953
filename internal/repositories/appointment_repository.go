package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthtrack/internal/models/db_models"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *db_models.Appointment) error
	ListByPatient(ctx context.Context, patientID uint) ([]db_models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]db_models.Appointment, error)
	UpdateStatus(ctx context.Context, id, userID uint, status db_models.AppointmentStatus) (*db_models.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (a *appointmentRepository) Create(ctx context.Context, appointment *db_models.Appointment) error {
	return a.db.WithContext(ctx).Create(appointment).Error
}

func (a *appointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]db_models.Appointment, error) {
	var appointments []db_models.Appointment
	err := a.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

func (a *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]db_models.Appointment, error) {
	var appointments []db_models.Appointment
	err := a.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// UpdateStatus changes the status of an appointment the user takes part in,
// as patient or doctor. It returns nil, nil when no such row exists.
func (a *appointmentRepository) UpdateStatus(ctx context.Context, id, userID uint, status db_models.AppointmentStatus) (*db_models.Appointment, error) {
	var appointment db_models.Appointment
	res := a.db.WithContext(ctx).
		Model(&appointment).
		Clauses(clause.Returning{}).
		Where("id = ? AND (patient_id = ? OR doctor_id = ?)", id, userID, userID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &appointment, nil
}
