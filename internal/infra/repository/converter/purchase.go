package converter

import (
	"referral-engine/internal/domain/purchase"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *purchase.Purchase) sqlc.CreatePurchaseParams {
	return sqlc.CreatePurchaseParams{
		ID:          p.ID(),
		PromotionID: p.PromotionID(),
		MerchantID:  p.MerchantID(),
		ConsumerID:  pgconv.UUIDPtrToPgtype(p.ConsumerID()),
		PaidAmount:  p.PaidAmount(),
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PurchaseFromRow(row sqlc.Purchases) *purchase.Purchase {
	return purchase.Reconstruct(
		row.ID,
		row.PromotionID,
		row.MerchantID,
		pgconv.UUIDPtrFromPgtype(row.ConsumerID),
		row.PaidAmount,
		purchase.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.StringPtrFromPgtype(row.ReferralCode),
		pgconv.UUIDPtrFromPgtype(row.InfluencerID),
		decimalPtr(row.CommissionAmount),
	)
}
