package converter

import (
	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/usecase/queries"
)

// Views read inside a command are rehydrated into entities so the usecase
// can run domain rules against them.

func PartnershipFromView(v *queries.PartnershipView) *partnership.Partnership {
	return partnership.Reconstruct(
		v.ID,
		v.MerchantID,
		v.InfluencerID,
		partnership.Status(v.Status),
		deref(v.Message),
		deref(v.Notes),
		v.RequestedAt,
		v.RespondedAt,
	)
}

func AssignmentFromView(v *queries.AssignmentView) *assignment.Assignment {
	return assignment.Reconstruct(
		v.ID,
		assignment.Promotion{ID: v.PromotionID, Title: v.PromotionTitle, Price: v.PromotionPrice},
		v.InfluencerID,
		v.MerchantID,
		v.ReferralCode,
		ruleFromView(v.Commission),
		ruleFromView(v.ExtraDiscount),
		v.IsActive,
		v.AssignedAt,
		v.DeactivatedAt,
		v.DeletedAt,
	)
}

func PurchaseFromView(v *queries.PurchaseView) *purchase.Purchase {
	return purchase.Reconstruct(
		v.ID,
		v.PromotionID,
		v.MerchantID,
		v.ConsumerID,
		v.PaidAmount,
		purchase.Status(v.Status),
		v.CreatedAt,
		v.ReferralCode,
		v.InfluencerID,
		v.CommissionAmount,
	)
}

func ruleFromView(v *queries.RuleView) *commission.Rule {
	if v == nil {
		return nil
	}
	return &commission.Rule{
		Type:  commission.RuleType(v.Type),
		Value: v.Value,
		Notes: v.Notes,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
