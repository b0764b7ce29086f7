package response

import (
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RuleResponse struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
	Notes string          `json:"notes,omitempty"`
}

type AssignmentResponse struct {
	ID             uuid.UUID        `json:"id"`
	PromotionID    uuid.UUID        `json:"promotion_id"`
	PromotionTitle string           `json:"promotion_title,omitempty"`
	PromotionPrice *decimal.Decimal `json:"promotion_price,omitempty"`
	InfluencerID   uuid.UUID        `json:"influencer_id"`
	MerchantID     uuid.UUID        `json:"merchant_id"`
	ReferralCode   string           `json:"referral_code"`
	CommissionRule *RuleResponse    `json:"commission,omitempty"`
	DiscountRule   *RuleResponse    `json:"extra_discount,omitempty"`
	IsActive       bool             `json:"is_active"`
	AssignedAt     time.Time        `json:"assigned_at"`
	DeactivatedAt  *time.Time       `json:"deactivated_at,omitempty"`
}

type AssignmentListResponse struct {
	Assignments []*AssignmentResponse `json:"assignments"`
}

type CodeAvailabilityResponse struct {
	Code      string `json:"code"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func FromAssignment(a *assignment.Assignment) *AssignmentResponse {
	p := a.Promotion()
	return &AssignmentResponse{
		ID:             a.ID(),
		PromotionID:    p.ID,
		PromotionTitle: p.Title,
		PromotionPrice: p.Price,
		InfluencerID:   a.InfluencerID(),
		MerchantID:     a.MerchantID(),
		ReferralCode:   a.ReferralCode(),
		CommissionRule: fromRule(a.CommissionRule()),
		DiscountRule:   fromRule(a.ExtraDiscount()),
		IsActive:       a.IsActive(),
		AssignedAt:     a.AssignedAt(),
		DeactivatedAt:  a.DeactivatedAt(),
	}
}

func FromAssignmentView(v *queries.AssignmentView) *AssignmentResponse {
	var res AssignmentResponse
	_ = copier.Copy(&res, v)
	res.CommissionRule = fromRuleView(v.Commission)
	res.DiscountRule = fromRuleView(v.ExtraDiscount)
	return &res
}

func FromAssignmentList(items []*queries.AssignmentView) *AssignmentListResponse {
	res := &AssignmentListResponse{Assignments: make([]*AssignmentResponse, len(items))}
	for i, it := range items {
		res.Assignments[i] = FromAssignmentView(it)
	}
	return res
}

func FromAvailability(a assignment.Availability) *CodeAvailabilityResponse {
	return &CodeAvailabilityResponse{Code: a.Code, Available: a.Available, Reason: string(a.Reason)}
}

func fromRule(r *commission.Rule) *RuleResponse {
	if r == nil {
		return nil
	}
	return &RuleResponse{Type: r.Type.String(), Value: r.Value, Notes: r.Notes}
}

func fromRuleView(r *queries.RuleView) *RuleResponse {
	if r == nil {
		return nil
	}
	return &RuleResponse{Type: r.Type, Value: r.Value, Notes: r.Notes}
}
