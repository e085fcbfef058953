package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"healthtrack/pkg/utils"
)

// parseLimit reads the optional ?limit= query value. Zero means "use the
// service default".
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, utils.ErrInvalidLimit
	}
	return limit, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.ErrInvalidID
	}
	return uint(id), nil
}
