// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseYearMonth parses the :year and :month path parameters. It reports
// false when either fails to parse or the month is outside 1-12.
func parseYearMonth(ctx *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		return 0, 0, false
	}
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
