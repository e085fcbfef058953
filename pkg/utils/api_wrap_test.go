package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing range", ErrMissingDateRange, http.StatusBadRequest, "Start date and end date are required"},
		{"missing image", ErrImageRequired, http.StatusBadRequest, "Base64 image is required"},
		{"missing description", ErrDescriptionRequired, http.StatusBadRequest, "Description is required"},
		{"bad limit", ErrInvalidLimit, http.StatusBadRequest, "Limit must be a positive integer"},
		{"no appointment", ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
		{"duplicate email", ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
		{"bad login", ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"database", fmt.Errorf("%w: %v", ErrDatabaseError, errors.New("conn reset")), http.StatusInternalServerError, "Failed to do thing"},
		{"provider", &UpstreamError{Cause: errors.New("rate limited")}, http.StatusInternalServerError, "Failed to do thing: rate limited"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Failed to do thing"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tc.err, "Failed to do thing")

			assert.Equal(t, tc.code, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp.Message)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestRespondSuccess_NilIsNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var missing *struct{ Name string }
	RespondSuccess(c, missing)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
