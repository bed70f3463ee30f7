package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// callerIdentity pulls the authenticated caller's ID and role out of the
// request context. It aborts with 401 when either is missing.
func callerIdentity(c *gin.Context) (string, string, bool) {
	idVal, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", "", false
	}
	idStr, ok := idVal.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", "", false
	}

	roleVal, ok := c.Get("role")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", "", false
	}
	roleStr, ok := roleVal.(string)
	if !ok || roleStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", "", false
	}
	return idStr, roleStr, true
}
