package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/expenses?"+rawQuery, nil)
	return c
}

func TestParseExpenseFilterDefaults(t *testing.T) {
	f, err := parseExpenseFilter(filterContext(t, ""))
	require.NoError(t, err)

	assert.Empty(t, f.Title)
	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.Equal(t, 0, f.PageIndex)
	assert.Equal(t, 10, f.PageSize)
}

func TestParseExpenseFilterDates(t *testing.T) {
	f, err := parseExpenseFilter(filterContext(t,
		"startDate=2026-01-02&endDate=2026-01-20T15:04:05Z"))
	require.NoError(t, err)

	require.NotNil(t, f.StartDate)
	assert.True(t, f.StartDate.Equal(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, f.EndDate)
	assert.True(t, f.EndDate.Equal(time.Date(2026, 1, 20, 15, 4, 5, 0, time.UTC)))
}

func TestParseExpenseFilterRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"malformed startDate", "startDate=yesterday"},
		{"malformed endDate", "endDate=20-01-2026"},
		{"negative pageIndex", "pageIndex=-1"},
		{"non-numeric pageIndex", "pageIndex=two"},
		{"zero pageSize", "pageSize=0"},
		{"non-numeric pageSize", "pageSize=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExpenseFilter(filterContext(t, tt.query))
			assert.Error(t, err)
		})
	}
}

func TestParseExpenseFilterPagination(t *testing.T) {
	f, err := parseExpenseFilter(filterContext(t, "pageIndex=3&pageSize=25&title=coffee"))
	require.NoError(t, err)

	assert.Equal(t, 3, f.PageIndex)
	assert.Equal(t, 25, f.PageSize)
	assert.Equal(t, "coffee", f.Title)
}
