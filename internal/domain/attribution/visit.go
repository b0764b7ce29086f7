package attribution

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxUserAgentLength = 512
	MaxReferrerLength  = 2048
)

// Visit is one anonymous arrival through a referral code. Visits are created
// unconverted and flipped to converted exactly once by conversion resolution.
type Visit struct {
	id           uuid.UUID
	assignmentID uuid.UUID
	promotionID  uuid.UUID
	influencerID uuid.UUID
	visitedAt    time.Time
	userAgent    string
	referrer     string
}

func NewVisit(assignmentID, promotionID, influencerID uuid.UUID, userAgent, referrer string, now time.Time) *Visit {
	return &Visit{
		id:           uuid.New(),
		assignmentID: assignmentID,
		promotionID:  promotionID,
		influencerID: influencerID,
		visitedAt:    now,
		userAgent:    truncate(userAgent, MaxUserAgentLength),
		referrer:     truncate(referrer, MaxReferrerLength),
	}
}

func (v *Visit) ID() uuid.UUID           { return v.id }
func (v *Visit) AssignmentID() uuid.UUID { return v.assignmentID }
func (v *Visit) PromotionID() uuid.UUID  { return v.promotionID }
func (v *Visit) InfluencerID() uuid.UUID { return v.influencerID }
func (v *Visit) VisitedAt() time.Time    { return v.visitedAt }
func (v *Visit) UserAgent() string       { return v.userAgent }
func (v *Visit) Referrer() string        { return v.referrer }

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
