package readstore

import (
	"context"

	"referral-engine/internal/infra"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type AssignmentReadQueries interface {
	GetAssignmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Assignments, error)
	GetActiveAssignmentByCode(ctx context.Context, db sqlc.DBTX, referralCode string) (sqlc.Assignments, error)
	ListAssignmentsByMerchant(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAssignmentsByMerchantParams) ([]sqlc.Assignments, error)
	ListAssignmentsByInfluencer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAssignmentsByInfluencerParams) ([]sqlc.Assignments, error)
	ExistsReferralCode(ctx context.Context, db sqlc.DBTX, referralCode string) (bool, error)
	ExistsActiveAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsActiveAssignmentParams) (bool, error)
}

type AssignmentReadStore struct {
	queries AssignmentReadQueries
	db      sqlc.DBTX
}

func NewAssignmentReadStore(queries AssignmentReadQueries, db sqlc.DBTX) *AssignmentReadStore {
	return &AssignmentReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID excludes soft-deleted assignments.
func (r *AssignmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AssignmentView, error) {
	row, err := r.queries.GetAssignmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get assignment by id", err)
	}
	return toAssignmentView(row), nil
}

// FindActiveByCode upper-cases the code before lookup.
func (r *AssignmentReadStore) FindActiveByCode(ctx context.Context, code string) (*queries.AssignmentView, error) {
	row, err := r.queries.GetActiveAssignmentByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active assignment not found for code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve referral code", err)
	}
	return toAssignmentView(row), nil
}

func (r *AssignmentReadStore) ListByMerchant(ctx context.Context, merchantID uuid.UUID, promotionID *uuid.UUID) ([]*queries.AssignmentView, error) {
	rows, err := r.queries.ListAssignmentsByMerchant(ctx, r.db, sqlc.ListAssignmentsByMerchantParams{
		MerchantID:  merchantID,
		PromotionID: pgconv.UUIDPtrToPgtype(promotionID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments by merchant", err)
	}
	return toAssignmentViews(rows), nil
}

func (r *AssignmentReadStore) ListByInfluencer(ctx context.Context, influencerID uuid.UUID, promotionID *uuid.UUID) ([]*queries.AssignmentView, error) {
	rows, err := r.queries.ListAssignmentsByInfluencer(ctx, r.db, sqlc.ListAssignmentsByInfluencerParams{
		InfluencerID: influencerID,
		PromotionID:  pgconv.UUIDPtrToPgtype(promotionID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments by influencer", err)
	}
	return toAssignmentViews(rows), nil
}

// CodeExists counts soft-deleted assignments too; their codes stay reserved.
func (r *AssignmentReadStore) CodeExists(ctx context.Context, code string) (bool, error) {
	ok, err := r.queries.ExistsReferralCode(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check referral code", err)
	}
	return ok, nil
}

func (r *AssignmentReadStore) ActivePairExists(ctx context.Context, promotionID, influencerID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsActiveAssignment(ctx, r.db, sqlc.ExistsActiveAssignmentParams{
		PromotionID:  promotionID,
		InfluencerID: influencerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active assignment", err)
	}
	return ok, nil
}

func toAssignmentView(row sqlc.Assignments) *queries.AssignmentView {
	return &queries.AssignmentView{
		ID:             row.ID,
		PromotionID:    row.PromotionID,
		PromotionTitle: pgconv.StringFromPgtype(row.PromotionTitle),
		PromotionPrice: decimalPtr(row.PromotionPrice),
		InfluencerID:   row.InfluencerID,
		MerchantID:     row.MerchantID,
		ReferralCode:   row.ReferralCode,
		Commission:     toRuleView(row.CommissionType, row.CommissionValue, row.CommissionNotes),
		ExtraDiscount:  toRuleView(row.ExtraDiscountType, row.ExtraDiscountValue, pgtype.Text{}),
		IsActive:       row.IsActive,
		AssignedAt:     pgconv.TimeFromPgtype(row.AssignedAt),
		DeactivatedAt:  pgconv.TimePtrFromPgtype(row.DeactivatedAt),
		DeletedAt:      pgconv.TimePtrFromPgtype(row.DeletedAt),
	}
}

func toAssignmentViews(rows []sqlc.Assignments) []*queries.AssignmentView {
	out := make([]*queries.AssignmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAssignmentView(row))
	}
	return out
}

func toRuleView(ruleType pgtype.Text, value decimal.NullDecimal, notes pgtype.Text) *queries.RuleView {
	if !ruleType.Valid || !value.Valid {
		return nil
	}
	return &queries.RuleView{
		Type:  ruleType.String,
		Value: value.Decimal,
		Notes: pgconv.StringFromPgtype(notes),
	}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
