package request

import (
	"referral-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RuleRequest struct {
	Type  string          `json:"type" binding:"required,oneof=percentage fixed"`
	Value decimal.Decimal `json:"value"`
	Notes string          `json:"notes" binding:"max=500"`
}

type AssignRequest struct {
	InfluencerID   uuid.UUID        `json:"influencer_id" binding:"required"`
	PromotionID    uuid.UUID        `json:"promotion_id" binding:"required"`
	PromotionTitle string           `json:"promotion_title" binding:"max=200"`
	PromotionPrice *decimal.Decimal `json:"promotion_price"`
	// ReferralCode is optional; one is generated when empty.
	ReferralCode  string       `json:"referral_code"`
	Commission    *RuleRequest `json:"commission" copier:"-"`
	ExtraDiscount *RuleRequest `json:"extra_discount" copier:"-"`
}

func (r *AssignRequest) ToInput(merchantID uuid.UUID) (commands.AssignInput, error) {
	var in commands.AssignInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.AssignInput{}, err
	}
	in.MerchantID = merchantID
	in.Commission = r.Commission.toInput()
	in.ExtraDiscount = r.ExtraDiscount.toInput()
	return in, nil
}

func (r *RuleRequest) toInput() *commands.RuleInput {
	if r == nil {
		return nil
	}
	return &commands.RuleInput{Type: r.Type, Value: r.Value, Notes: r.Notes}
}
