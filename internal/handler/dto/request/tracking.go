package request

import (
	"github.com/google/uuid"
)

type TrackVisitRequest struct {
	ReferralCode string    `json:"referral_code" binding:"required"`
	PromotionID  uuid.UUID `json:"promotion_id" binding:"required"`
}

type TrackConversionRequest struct {
	PurchaseID  uuid.UUID `json:"purchase_id" binding:"required"`
	PromotionID uuid.UUID `json:"promotion_id" binding:"required"`
}
