package readstore

import (
	"context"

	"referral-engine/internal/infra"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseReadQueries interface {
	GetPurchaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Purchases, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PurchaseView, error) {
	row, err := r.queries.GetPurchaseByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchase by id", err)
	}
	return ToPurchaseView(row), nil
}

func ToPurchaseView(row sqlc.Purchases) *queries.PurchaseView {
	return &queries.PurchaseView{
		ID:               row.ID,
		PromotionID:      row.PromotionID,
		MerchantID:       row.MerchantID,
		ConsumerID:       pgconv.UUIDPtrFromPgtype(row.ConsumerID),
		PaidAmount:       row.PaidAmount,
		Status:           row.Status,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		ReferralCode:     pgconv.StringPtrFromPgtype(row.ReferralCode),
		InfluencerID:     pgconv.UUIDPtrFromPgtype(row.InfluencerID),
		CommissionAmount: decimalPtr(row.CommissionAmount),
	}
}
