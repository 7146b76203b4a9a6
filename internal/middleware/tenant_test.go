package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func tenantRouter(defaultOrg string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TenantMiddleware(defaultOrg))
	r.GET("/scope", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"org": c.GetString("orgMail")})
	})
	return r
}

func TestTenantMiddlewareHeaderWins(t *testing.T) {
	r := tenantRouter("default@example.com")

	req := httptest.NewRequest(http.MethodGet, "/scope", nil)
	req.Header.Set("X-Org-Mail", "other@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "other@example.com")
}

func TestTenantMiddlewareFallsBackToDefault(t *testing.T) {
	r := tenantRouter("default@example.com")

	req := httptest.NewRequest(http.MethodGet, "/scope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "default@example.com")
}

func TestTenantMiddlewareNoScopeAvailable(t *testing.T) {
	r := tenantRouter("")

	req := httptest.NewRequest(http.MethodGet, "/scope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/secure", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
