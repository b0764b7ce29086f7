package response

import (
	"time"

	"referral-engine/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseResponse struct {
	ID               uuid.UUID        `json:"id"`
	PromotionID      uuid.UUID        `json:"promotion_id"`
	MerchantID       uuid.UUID        `json:"merchant_id"`
	ConsumerID       *uuid.UUID       `json:"consumer_id,omitempty"`
	PaidAmount       decimal.Decimal  `json:"paid_amount"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	ReferralCode     *string          `json:"referral_code,omitempty"`
	InfluencerID     *uuid.UUID       `json:"influencer_id,omitempty"`
	CommissionAmount *decimal.Decimal `json:"commission_amount,omitempty"`
}

func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:               p.ID(),
		PromotionID:      p.PromotionID(),
		MerchantID:       p.MerchantID(),
		ConsumerID:       p.ConsumerID(),
		PaidAmount:       p.PaidAmount(),
		Status:           p.Status().String(),
		CreatedAt:        p.CreatedAt(),
		ReferralCode:     p.ReferralCode(),
		InfluencerID:     p.InfluencerID(),
		CommissionAmount: p.CommissionAmount(),
	}
}
