package request

import (
	"referral-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RegisterPurchaseRequest struct {
	// ID is the checkout's purchase id. A new one is minted when omitted.
	ID          uuid.UUID       `json:"id"`
	PromotionID uuid.UUID       `json:"promotion_id" binding:"required"`
	MerchantID  uuid.UUID       `json:"merchant_id" binding:"required"`
	ConsumerID  *uuid.UUID      `json:"consumer_id"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved redeemed rejected"`
}

func (r *RegisterPurchaseRequest) ToInput() (commands.RegisterPurchaseInput, error) {
	var in commands.RegisterPurchaseInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.RegisterPurchaseInput{}, err
	}
	return in, nil
}
