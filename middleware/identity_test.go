package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireIdentity(), func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return router
}

func TestRequireIdentityRejectsMissingHeader(t *testing.T) {
	router := identityRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "x-user-id header is missing")
}

func TestRequireIdentityRejectsBlankHeader(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(UserIDHeader, "   ")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireIdentityResolvesUser(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(UserIDHeader, "user-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestGetUserIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetUserID(c))
}
