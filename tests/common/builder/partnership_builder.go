//go:build unit || e2e

package builder

import (
	"time"

	"referral-engine/internal/domain/partnership"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PartnershipBuilder struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID
	InfluencerID uuid.UUID
	Status       partnership.Status
	Message      string
	Notes        string
	RequestedAt  time.Time
	RespondedAt  *time.Time
}

func NewPartnershipBuilder() *PartnershipBuilder {
	return &PartnershipBuilder{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
		InfluencerID: uuid.New(),
		Status:       partnership.StatusPending,
		Message:      "Would love to work with you",
		RequestedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *PartnershipBuilder) With(mutate func(*PartnershipBuilder)) *PartnershipBuilder {
	mutate(b)
	return b
}

func (b *PartnershipBuilder) Approved() *PartnershipBuilder {
	at := b.RequestedAt.Add(time.Hour)
	b.Status = partnership.StatusApproved
	b.RespondedAt = &at
	return b
}

func (b *PartnershipBuilder) Rejected() *PartnershipBuilder {
	at := b.RequestedAt.Add(time.Hour)
	b.Status = partnership.StatusRejected
	b.RespondedAt = &at
	return b
}

// Build methods
func (b *PartnershipBuilder) BuildDomain() *partnership.Partnership {
	return partnership.Reconstruct(b.ID, b.MerchantID, b.InfluencerID, b.Status, b.Message, b.Notes, b.RequestedAt, b.RespondedAt)
}

func (b *PartnershipBuilder) BuildInfra() sqlc.Partnerships {
	return sqlc.Partnerships{
		ID:           b.ID,
		MerchantID:   b.MerchantID,
		InfluencerID: b.InfluencerID,
		Status:       b.Status.String(),
		Message:      pgconv.OptionalStringToPgtype(b.Message),
		Notes:        pgconv.OptionalStringToPgtype(b.Notes),
		RequestedAt:  pgconv.TimeToPgtype(b.RequestedAt),
		RespondedAt:  pgconv.TimePtrToPgtype(b.RespondedAt),
	}
}
