package controllers

import (
	"strconv"
	"time"

	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseIDParam reads a positive integer path parameter. On failure it
// writes the 422 response and reports false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.ValidationError(c, utils.Field("path", name, "value is not a valid integer"))
		return 0, false
	}
	return uint(id), true
}

// parseDateQuery reads a required YYYY-MM-DD query parameter as a UTC
// midnight timestamp.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		utils.ValidationError(c, utils.Field("query", name, "field required"))
		return time.Time{}, false
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		utils.ValidationError(c, utils.Field("query", name, "invalid date format, expected YYYY-MM-DD"))
		return time.Time{}, false
	}
	return t, true
}

// parsePagination reads page and per_page. Page starts at 1; per_page
// must stay below 30. Zero per_page means "not set" and lets the
// service apply its default.
func parsePagination(c *gin.Context) (page, perPage int, ok bool) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			utils.ValidationError(c, utils.Field("query", "page", "ensure this value is greater than or equal to 1"))
			return 0, 0, false
		}
		page = v
	}

	if raw := c.Query("per_page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v >= 30 {
			utils.ValidationError(c, utils.Field("query", "per_page", "ensure this value is in the range [1, 30)"))
			return 0, 0, false
		}
		perPage = v
	}
	return page, perPage, true
}
