package request

import (
	"referral-engine/internal/pkg/patch"
	"referral-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type RequestPartnershipRequest struct {
	InfluencerID uuid.UUID `json:"influencer_id" binding:"required"`
	Message      *string   `json:"message" binding:"omitempty,max=1000"`
}

type RespondPartnershipRequest struct {
	Action string  `json:"action" binding:"required,oneof=approve reject"`
	Notes  *string `json:"notes" binding:"omitempty,max=1000"`
}

func (r *RequestPartnershipRequest) ToInput(merchantID uuid.UUID) commands.RequestPartnershipInput {
	return commands.RequestPartnershipInput{
		MerchantID:   merchantID,
		InfluencerID: r.InfluencerID,
		Message:      patch.Coalesce(r.Message, ""),
	}
}

func (r *RespondPartnershipRequest) ToInput(partnershipID, influencerID uuid.UUID) commands.RespondPartnershipInput {
	return commands.RespondPartnershipInput{
		PartnershipID: partnershipID,
		InfluencerID:  influencerID,
		Action:        r.Action,
		Notes:         patch.Coalesce(r.Notes, ""),
	}
}
