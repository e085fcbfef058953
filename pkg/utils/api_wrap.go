package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const loggerKey = "logger"

type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondSuccess writes data as the bare JSON body. A nil pointer is
// rendered as null.
func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// SetLogger stores the request scoped logger for Logger.
func SetLogger(c *gin.Context, entry *logrus.Entry) {
	c.Set(loggerKey, entry)
}

// Logger returns the request scoped logger, or the standard logger when no
// middleware installed one.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger()).WithField("trace_id", c.GetString("trace_id"))
}

// HandleServiceError logs err and maps it onto a response. fallback is the
// route specific message used for internal failures.
func HandleServiceError(c *gin.Context, err error, fallback string) {
	log := Logger(c).WithError(err).WithField("route", c.FullPath())

	var upstream *UpstreamError
	switch {
	case errors.Is(err, ErrInvalidLimit):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Limit must be a positive integer")
	case errors.Is(err, ErrInvalidID):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, ErrMissingDateRange):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Start date and end date are required")
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDateRange):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Invalid date range")
	case errors.Is(err, ErrImageRequired):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Base64 image is required")
	case errors.Is(err, ErrInvalidImage):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Image must be base64 encoded")
	case errors.Is(err, ErrDescriptionRequired):
		log.Info("rejected request")
		RespondError(c, http.StatusBadRequest, "Description is required")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrFoodEntryNotFound):
		RespondError(c, http.StatusNotFound, "Food entry not found")
	case errors.Is(err, ErrAppointmentNotFound):
		RespondError(c, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, ErrDocumentNotFound):
		RespondError(c, http.StatusNotFound, "Medical document not found")
	case errors.Is(err, ErrConversationNotFound):
		RespondError(c, http.StatusNotFound, "Conversation not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		log.Info("login failed")
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.As(err, &upstream):
		log.Error("analysis provider failed")
		RespondError(c, http.StatusInternalServerError, fallback+": "+upstream.Cause.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Error("database error")
		RespondError(c, http.StatusInternalServerError, fallback)
	default:
		log.Error("unhandled error")
		RespondError(c, http.StatusInternalServerError, fallback)
	}
}

// RespondBindError answers a body that failed to decode or validate.
func RespondBindError(c *gin.Context, err error) {
	Logger(c).WithError(err).Info("invalid request body")
	RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
}
