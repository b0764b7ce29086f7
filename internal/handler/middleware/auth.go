package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"referral-engine/internal/domain/party"
	"referral-engine/internal/handler/httperr"
	"referral-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPartyIDKey   = "party_id"
	ctxPartyRoleKey = "party_role"
	ctxClaimsKey    = "jwt_claims"
)

var (
	errMissingToken = errors.New("access token required")
	errInvalidToken = errors.New("invalid or expired token")
	errForbidden    = errors.New("insufficient permissions")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a bearer token issued by the identity service.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", httperr.Detail{Code: "UNAUTHORIZED"})
			return
		}

		partyID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token", httperr.Detail{Code: "UNAUTHORIZED"})
			return
		}

		c.Set(ctxPartyIDKey, partyID)
		c.Set(ctxPartyRoleKey, role)
		c.Set(ctxClaimsKey, map[string]any{
			"party_id": partyID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...party.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("role missing from context"), "Internal server error", nil)
			return
		}

		if !slices.Contains(roles, role) {
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions", httperr.Detail{Code: "FORBIDDEN"})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPartyID(c *gin.Context) (uuid.UUID, bool) {
	partyID, exists := c.Get(ctxPartyIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := partyID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (party.Role, bool) {
	partyRole, exists := c.Get(ctxPartyRoleKey)
	if !exists {
		return "", false
	}

	role, ok := partyRole.(party.Role)
	return role, ok
}

// SetParty puts an authenticated caller on the context. Tests use it in place of RequireAuth.
func SetParty(c *gin.Context, partyID uuid.UUID, role party.Role) {
	c.Set(ctxPartyIDKey, partyID)
	c.Set(ctxPartyRoleKey, role)
}
