//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"referral-engine/internal/domain/party"
	"referral-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret")
	partyID := uuid.New()

	token, err := svc.GenerateToken(partyID, party.RoleMerchant, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, partyID, claims.PartyID)
	assert.Equal(t, "merchant", claims.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("secret")

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), party.RoleInfluencer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwt.NewService("other").GenerateToken(uuid.New(), party.RoleInfluencer, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing party id", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.Nil, party.RoleService, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
