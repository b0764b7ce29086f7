//go:build unit || e2e

package builder

import (
	"time"

	"referral-engine/internal/domain/purchase"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	ID               uuid.UUID
	PromotionID      uuid.UUID
	MerchantID       uuid.UUID
	ConsumerID       *uuid.UUID
	PaidAmount       decimal.Decimal
	Status           purchase.Status
	CreatedAt        time.Time
	ReferralCode     *string
	InfluencerID     *uuid.UUID
	CommissionAmount *decimal.Decimal
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		ID:          uuid.New(),
		PromotionID: uuid.New(),
		MerchantID:  uuid.New(),
		PaidAmount:  decimal.RequireFromString("100.00"),
		Status:      purchase.StatusPending,
		CreatedAt:   time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) AttributedTo(code string, influencerID uuid.UUID, amount decimal.Decimal) *PurchaseBuilder {
	b.ReferralCode = &code
	b.InfluencerID = &influencerID
	b.CommissionAmount = &amount
	return b
}

// Build methods
func (b *PurchaseBuilder) BuildDomain() *purchase.Purchase {
	return purchase.Reconstruct(
		b.ID,
		b.PromotionID,
		b.MerchantID,
		b.ConsumerID,
		b.PaidAmount,
		b.Status,
		b.CreatedAt,
		b.ReferralCode,
		b.InfluencerID,
		b.CommissionAmount,
	)
}

func (b *PurchaseBuilder) BuildInfra() sqlc.Purchases {
	row := sqlc.Purchases{
		ID:           b.ID,
		PromotionID:  b.PromotionID,
		MerchantID:   b.MerchantID,
		ConsumerID:   pgconv.UUIDPtrToPgtype(b.ConsumerID),
		PaidAmount:   b.PaidAmount,
		Status:       b.Status.String(),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		ReferralCode: pgconv.StringPtrToPgtype(b.ReferralCode),
		InfluencerID: pgconv.UUIDPtrToPgtype(b.InfluencerID),
	}
	if b.CommissionAmount != nil {
		row.CommissionAmount = decimal.NewNullDecimal(*b.CommissionAmount)
	}
	return row
}
