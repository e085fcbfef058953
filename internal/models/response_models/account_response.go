package response_models

import (
	"time"

	"healthtrack/internal/models/db_models"
)

type AccountLoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      *db_models.User `json:"user"`
}
