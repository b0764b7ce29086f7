package repository

import (
	"context"
	"time"

	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/infra"
	"referral-engine/internal/infra/repository/converter"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseWriteQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchases, error)
	AttributePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.AttributePurchaseParams) (int64, error)
	UpdatePurchaseStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePurchaseStatusParams) (sqlc.Purchases, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error {
	if _, err := r.queries.CreatePurchase(ctx, tx, converter.PurchaseToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) Attribute(ctx context.Context, tx sqlc.DBTX, purchaseID, promotionID uuid.UUID, code string, influencerID uuid.UUID, amount decimal.Decimal, at time.Time) (bool, error) {
	n, err := r.queries.AttributePurchase(ctx, tx, sqlc.AttributePurchaseParams{
		ReferralCode:     pgconv.StringToPgtype(code),
		InfluencerID:     pgconv.UUIDToPgtype(influencerID),
		CommissionAmount: decimal.NewNullDecimal(amount),
		AttributedAt:     pgconv.TimeToPgtype(at),
		ID:               purchaseID,
		PromotionID:      promotionID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to attribute purchase", err)
	}
	return n > 0, nil
}

// UpdateStatus is a compare-and-swap from one status to the next.
func (r *PurchaseRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to purchase.Status) (*purchase.Purchase, error) {
	row, err := r.queries.UpdatePurchaseStatus(ctx, tx, sqlc.UpdatePurchaseStatusParams{
		ToStatus:   to.String(),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase status changed concurrently", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update purchase status", err)
	}
	return converter.PurchaseFromRow(row), nil
}
