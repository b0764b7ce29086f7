//go:build unit

package reftoken_test

import (
	"strings"
	"testing"
	"time"

	"referral-engine/internal/domain/attribution"
	"referral-engine/internal/pkg/reftoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := reftoken.NewCodec("attr-secret")
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	value, err := codec.Encode(attribution.NewToken("SUMMER2025", issued))
	require.NoError(t, err)

	got, err := codec.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER2025", got.Code)
	assert.True(t, issued.Equal(got.IssuedAt))
}

func TestCodec_DecodeOldTokenStillParses(t *testing.T) {
	codec := reftoken.NewCodec("attr-secret")
	issued := time.Now().Add(-365 * 24 * time.Hour).Truncate(reftoken.IssuedAtPrecision)

	value, err := codec.Encode(attribution.NewToken("SUMMER2025", issued))
	require.NoError(t, err)

	got, err := codec.Decode(value)
	require.NoError(t, err)
	assert.True(t, issued.Equal(got.IssuedAt))
}

func TestCodec_RejectsTampering(t *testing.T) {
	codec := reftoken.NewCodec("attr-secret")
	value, err := codec.Encode(attribution.NewToken("SUMMER2025", time.Now()))
	require.NoError(t, err)

	parts := strings.Split(value, ".")
	require.Len(t, parts, 3)

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "garbage", value: "abc"},
		{name: "swapped payload", value: parts[0] + "." + parts[0] + "." + parts[2]},
		{name: "stripped signature", value: parts[0] + "." + parts[1] + "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.value)
			assert.ErrorIs(t, err, reftoken.ErrInvalidToken)
		})
	}

	t.Run("other secret", func(t *testing.T) {
		_, err := reftoken.NewCodec("different").Decode(value)
		assert.ErrorIs(t, err, reftoken.ErrInvalidToken)
	})
}
