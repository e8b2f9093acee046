package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expense-api/models"
)

// timeFormats are accepted for startDate/endDate query parameters. A bare
// date is interpreted as midnight UTC.
var timeFormats = []string{time.RFC3339, "2006-01-02"}

func parseExpenseFilter(c *gin.Context) (models.ExpenseFilter, error) {
	filter := models.ExpenseFilter{
		Title:    c.Query("title"),
		PageSize: 10,
	}

	var err error
	if filter.StartDate, err = parseTimeParam(c.Query("startDate"), "startDate"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseTimeParam(c.Query("endDate"), "endDate"); err != nil {
		return filter, err
	}

	if v := c.Query("pageIndex"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("pageIndex must be a non-negative integer")
		}
		filter.PageIndex = n
	}
	if v := c.Query("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return filter, fmt.Errorf("pageSize must be a positive integer")
		}
		filter.PageSize = n
	}

	return filter, nil
}

func parseTimeParam(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s must be an RFC3339 timestamp or a YYYY-MM-DD date", name)
}
