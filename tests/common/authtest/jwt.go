//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"referral-engine/internal/domain/party"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints identity tokens signed with the same secret the service validates with.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, partyID uuid.UUID, role party.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(partyID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, partyID uuid.UUID, role party.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(partyID, role, -time.Minute)
	require.NoError(t, err)
	return token
}

// Party is an authenticated caller for e2e requests.
type Party struct {
	ID    uuid.UUID
	Role  party.Role
	Token string
}

func (h *JWTHelper) NewParty(t *testing.T, role party.Role) Party {
	t.Helper()
	id := uuid.New()
	return Party{ID: id, Role: role, Token: h.GenerateToken(t, id, role)}
}
