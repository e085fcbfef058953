package db_models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled   AppointmentStatus = "scheduled"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

type Appointment struct {
	BaseModel
	PatientID       uint              `gorm:"index;not null" json:"patientId"`
	Patient         *User             `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	DoctorID        uint              `gorm:"index;not null" json:"doctorId"`
	Doctor          *User             `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointmentDate"`
	Duration        int               `gorm:"not null;default:30" json:"duration"`
	Status          AppointmentStatus `gorm:"type:varchar(16);not null;default:scheduled" json:"status"`
	Type            string            `gorm:"not null;default:consultation" json:"type"`
	Notes           string            `gorm:"type:text" json:"notes"`
	Price           *float64          `gorm:"type:numeric(10,2)" json:"price"`
	IsPaid          bool              `gorm:"not null;default:false" json:"isPaid"`
}
