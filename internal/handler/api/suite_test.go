//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"referral-engine/internal/domain/party"
	"referral-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth authenticates partyID with the role carried as the bearer token.
func fakeAuth(partyID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := party.NewRole(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetParty(c, partyID, role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
