//go:build unit || e2e

package builder

import (
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssignmentBuilder struct {
	ID             uuid.UUID
	PromotionID    uuid.UUID
	PromotionTitle string
	PromotionPrice *decimal.Decimal
	InfluencerID   uuid.UUID
	MerchantID     uuid.UUID
	ReferralCode   string
	Commission     *commission.Rule
	ExtraDiscount  *commission.Rule
	IsActive       bool
	AssignedAt     time.Time
	DeactivatedAt  *time.Time
	DeletedAt      *time.Time
}

func NewAssignmentBuilder() *AssignmentBuilder {
	price := decimal.RequireFromString("49.90")
	return &AssignmentBuilder{
		ID:             uuid.New(),
		PromotionID:    uuid.New(),
		PromotionTitle: "Summer Sale",
		PromotionPrice: &price,
		InfluencerID:   uuid.New(),
		MerchantID:     uuid.New(),
		ReferralCode:   "SUMMER2025",
		Commission: &commission.Rule{
			Type:  commission.RuleTypePercentage,
			Value: decimal.NewFromInt(10),
		},
		IsActive:   true,
		AssignedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AssignmentBuilder) With(mutate func(*AssignmentBuilder)) *AssignmentBuilder {
	mutate(b)
	return b
}

func (b *AssignmentBuilder) Inactive() *AssignmentBuilder {
	at := b.AssignedAt.Add(24 * time.Hour)
	b.IsActive = false
	b.DeactivatedAt = &at
	return b
}

// Build methods
func (b *AssignmentBuilder) BuildDomain() *assignment.Assignment {
	return assignment.Reconstruct(
		b.ID,
		assignment.Promotion{ID: b.PromotionID, Title: b.PromotionTitle, Price: b.PromotionPrice},
		b.InfluencerID,
		b.MerchantID,
		b.ReferralCode,
		b.Commission,
		b.ExtraDiscount,
		b.IsActive,
		b.AssignedAt,
		b.DeactivatedAt,
		b.DeletedAt,
	)
}

func (b *AssignmentBuilder) BuildInfra() sqlc.Assignments {
	row := sqlc.Assignments{
		ID:             b.ID,
		PromotionID:    b.PromotionID,
		InfluencerID:   b.InfluencerID,
		MerchantID:     b.MerchantID,
		PromotionTitle: pgconv.OptionalStringToPgtype(b.PromotionTitle),
		ReferralCode:   b.ReferralCode,
		IsActive:       b.IsActive,
		AssignedAt:     pgconv.TimeToPgtype(b.AssignedAt),
		DeactivatedAt:  pgconv.TimePtrToPgtype(b.DeactivatedAt),
		DeletedAt:      pgconv.TimePtrToPgtype(b.DeletedAt),
	}
	if b.PromotionPrice != nil {
		row.PromotionPrice = decimal.NewNullDecimal(*b.PromotionPrice)
	}
	if b.Commission != nil {
		row.CommissionType = pgconv.StringToPgtype(b.Commission.Type.String())
		row.CommissionValue = decimal.NewNullDecimal(b.Commission.Value)
		row.CommissionNotes = pgconv.OptionalStringToPgtype(b.Commission.Notes)
	}
	if b.ExtraDiscount != nil {
		row.ExtraDiscountType = pgconv.StringToPgtype(b.ExtraDiscount.Type.String())
		row.ExtraDiscountValue = decimal.NewNullDecimal(b.ExtraDiscount.Value)
	}
	return row
}
