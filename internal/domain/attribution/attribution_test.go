//go:build unit

package attribution_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"referral-engine/internal/domain/attribution"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToken_Expired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := attribution.NewToken("summer2025", issued)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "just issued", now: issued, want: false},
		{name: "one second before window end", now: issued.Add(attribution.DefaultWindow - time.Second), want: false},
		{name: "exactly at window end", now: issued.Add(attribution.DefaultWindow), want: false},
		{name: "one second after window end", now: issued.Add(attribution.DefaultWindow + time.Second), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.Expired(tt.now, attribution.DefaultWindow))
		})
	}
}

func TestNewToken_NormalizesCode(t *testing.T) {
	token := attribution.NewToken(" summer2025 ", time.Now())
	assert.Equal(t, "SUMMER2025", token.Code)
}

func TestNewVisit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assignmentID, promotionID, influencerID := uuid.New(), uuid.New(), uuid.New()

	t.Run("keeps metadata", func(t *testing.T) {
		v := attribution.NewVisit(assignmentID, promotionID, influencerID, "Mozilla/5.0", "https://social.example/p/1", now)

		assert.NotEqual(t, uuid.Nil, v.ID())
		assert.Equal(t, assignmentID, v.AssignmentID())
		assert.Equal(t, promotionID, v.PromotionID())
		assert.Equal(t, influencerID, v.InfluencerID())
		assert.Equal(t, now, v.VisitedAt())
		assert.Equal(t, "Mozilla/5.0", v.UserAgent())
		assert.Equal(t, "https://social.example/p/1", v.Referrer())
	})

	t.Run("truncates oversized metadata on rune boundary", func(t *testing.T) {
		ua := strings.Repeat("a", attribution.MaxUserAgentLength-1) + "é"
		v := attribution.NewVisit(assignmentID, promotionID, influencerID, ua, strings.Repeat("r", 5000), now)

		assert.True(t, utf8.ValidString(v.UserAgent()))
		assert.LessOrEqual(t, len(v.UserAgent()), attribution.MaxUserAgentLength)
		assert.Len(t, v.Referrer(), attribution.MaxReferrerLength)
	})
}
