package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// agencyFromContext reads the tenant scope set by the JWT middleware.
func agencyFromContext(c *gin.Context) (uuid.UUID, bool) {
	agencyID, err := uuid.Parse(c.GetString("agency_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return agencyID, true
}

func pagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		return 0, 0, false
	}

	return page, pageSize, true
}
