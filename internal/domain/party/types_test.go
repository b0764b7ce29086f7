//go:build unit

package party_test

import (
	"testing"

	"referral-engine/internal/domain/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		in      string
		want    party.Role
		wantErr bool
	}{
		{in: "merchant", want: party.RoleMerchant},
		{in: "influencer", want: party.RoleInfluencer},
		{in: "service", want: party.RoleService},
		{in: "consumer", wantErr: true},
		{in: "", wantErr: true},
		{in: "Merchant", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := party.NewRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, party.ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
