package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"healthtrack/internal/models/response_models"
	"healthtrack/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Healthz reports whether the server can reach the database.
func (h *HealthController) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		utils.Logger(c).WithError(err).Warn("database ping failed")
		c.JSON(http.StatusServiceUnavailable, response_models.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	utils.RespondSuccess(c, response_models.HealthResponse{Status: "ok", Database: "up"})
}
