package request_models

import "time"

type CreateAppointmentRequest struct {
	DoctorID        uint      `json:"doctorId" binding:"required"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
	Duration        int       `json:"duration" binding:"omitempty,min=5,max=480"`
	Status          string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Type            string    `json:"type"`
	Notes           string    `json:"notes"`
	Price           *float64  `json:"price" binding:"omitempty,min=0"`
	IsPaid          bool      `json:"isPaid"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled rescheduled"`
}
