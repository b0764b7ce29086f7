package response

import (
	"time"

	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PartnershipResponse struct {
	ID           uuid.UUID  `json:"id"`
	MerchantID   uuid.UUID  `json:"merchant_id"`
	InfluencerID uuid.UUID  `json:"influencer_id"`
	Status       string     `json:"status"`
	Message      *string    `json:"message,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
}

type PartnershipListResponse struct {
	Partnerships []*PartnershipResponse `json:"partnerships"`
	NextCursor   string                 `json:"next_cursor,omitempty"`
}

func FromPartnership(p *partnership.Partnership) *PartnershipResponse {
	return &PartnershipResponse{
		ID:           p.ID(),
		MerchantID:   p.MerchantID(),
		InfluencerID: p.InfluencerID(),
		Status:       p.Status().String(),
		Message:      optional(p.Message()),
		Notes:        optional(p.Notes()),
		RequestedAt:  p.RequestedAt(),
		RespondedAt:  p.RespondedAt(),
	}
}

func FromPartnershipView(v *queries.PartnershipView) *PartnershipResponse {
	var res PartnershipResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromPartnershipList(items []*queries.PartnershipView, next *queries.Cursor) *PartnershipListResponse {
	res := &PartnershipListResponse{Partnerships: make([]*PartnershipResponse, len(items))}
	for i, it := range items {
		res.Partnerships[i] = FromPartnershipView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
