package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type AppointmentController struct {
	appointmentService services.AppointmentServiceInterface
}

func NewAppointmentController(appointmentService services.AppointmentServiceInterface) *AppointmentController {
	return &AppointmentController{appointmentService: appointmentService}
}

// ListAppointments godoc
// @Summary List the caller's appointments as patient
// @Tags Appointments
// @Produce json
// @Success 200 {array} db_models.Appointment
// @Router /api/appointments [get]
func (a *AppointmentController) ListAppointments(c *gin.Context) {
	appointments, err := a.appointmentService.ListForPatient(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch appointments")
		return
	}
	utils.RespondSuccess(c, appointments)
}

// ListDoctorAppointments returns appointments booked with the caller.
func (a *AppointmentController) ListDoctorAppointments(c *gin.Context) {
	appointments, err := a.appointmentService.ListForDoctor(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch appointments")
		return
	}
	utils.RespondSuccess(c, appointments)
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body request_models.CreateAppointmentRequest true "Appointment"
// @Success 200 {object} db_models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/appointments [post]
func (a *AppointmentController) CreateAppointment(c *gin.Context) {
	var req request_models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	appointment, err := a.appointmentService.CreateAppointment(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to create appointment")
		return
	}
	utils.RespondSuccess(c, appointment)
}

// UpdateStatus godoc
// @Summary Change an appointment's status
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body request_models.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} db_models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/appointments/{id}/status [patch]
func (a *AppointmentController) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to update appointment")
		return
	}

	var req request_models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	appointment, err := a.appointmentService.UpdateStatus(c.Request.Context(), id, middleware.MustUserID(c), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to update appointment")
		return
	}
	utils.RespondSuccess(c, appointment)
}
