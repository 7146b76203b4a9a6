package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TenantMiddleware resolves the tenant scope for public (storefront)
// routes, where there is no bearer token. The org comes from the
// X-Org-Mail header, falling back to the configured default.
func TenantMiddleware(defaultOrg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		org := c.GetHeader("X-Org-Mail")
		if org == "" {
			org = defaultOrg
		}
		if org == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No organization scope available"})
			c.Abort()
			return
		}
		c.Set("orgMail", org)
		c.Next()
	}
}
