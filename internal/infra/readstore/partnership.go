package readstore

import (
	"context"
	"time"

	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/infra"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PartnershipReadQueries interface {
	GetPartnershipByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partnerships, error)
	GetPartnershipByPair(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPartnershipByPairParams) (sqlc.Partnerships, error)
	ExistsApprovedPartnership(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsApprovedPartnershipParams) (bool, error)
	ListPartnershipsByMerchantFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPartnershipsByMerchantFirstPageParams) ([]sqlc.Partnerships, error)
	ListPartnershipsByMerchantKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPartnershipsByMerchantKeysetParams) ([]sqlc.Partnerships, error)
	ListPartnershipsByInfluencerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPartnershipsByInfluencerFirstPageParams) ([]sqlc.Partnerships, error)
	ListPartnershipsByInfluencerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPartnershipsByInfluencerKeysetParams) ([]sqlc.Partnerships, error)
}

type PartnershipReadStore struct {
	queries PartnershipReadQueries
	db      sqlc.DBTX
}

func NewPartnershipReadStore(queries PartnershipReadQueries, db sqlc.DBTX) *PartnershipReadStore {
	return &PartnershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PartnershipReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PartnershipView, error) {
	row, err := r.queries.GetPartnershipByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partnership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get partnership by id", err)
	}
	return toPartnershipView(row), nil
}

func (r *PartnershipReadStore) FindByPair(ctx context.Context, merchantID, influencerID uuid.UUID) (*queries.PartnershipView, error) {
	row, err := r.queries.GetPartnershipByPair(ctx, r.db, sqlc.GetPartnershipByPairParams{
		MerchantID:   merchantID,
		InfluencerID: influencerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partnership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get partnership by pair", err)
	}
	return toPartnershipView(row), nil
}

func (r *PartnershipReadStore) ApprovedExists(ctx context.Context, merchantID, influencerID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsApprovedPartnership(ctx, r.db, sqlc.ExistsApprovedPartnershipParams{
		MerchantID:   merchantID,
		InfluencerID: influencerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check approved partnership", err)
	}
	return ok, nil
}

func (r *PartnershipReadStore) FindByMerchantFirstPage(ctx context.Context, merchantID uuid.UUID, status *partnership.Status, limit int32) ([]*queries.PartnershipView, error) {
	rows, err := r.queries.ListPartnershipsByMerchantFirstPage(ctx, r.db, sqlc.ListPartnershipsByMerchantFirstPageParams{
		MerchantID: merchantID,
		Status:     statusFilter(status),
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partnerships first page by merchant", err)
	}
	return toPartnershipViews(rows), nil
}

func (r *PartnershipReadStore) FindByMerchantKeyset(ctx context.Context, merchantID uuid.UUID, status *partnership.Status, lastRequestedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PartnershipView, error) {
	rows, err := r.queries.ListPartnershipsByMerchantKeyset(ctx, r.db, sqlc.ListPartnershipsByMerchantKeysetParams{
		MerchantID:  merchantID,
		Status:      statusFilter(status),
		RequestedAt: pgconv.TimeToPgtype(lastRequestedAt),
		ID:          lastID,
		Lim:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partnerships keyset by merchant", err)
	}
	return toPartnershipViews(rows), nil
}

func (r *PartnershipReadStore) FindByInfluencerFirstPage(ctx context.Context, influencerID uuid.UUID, status *partnership.Status, limit int32) ([]*queries.PartnershipView, error) {
	rows, err := r.queries.ListPartnershipsByInfluencerFirstPage(ctx, r.db, sqlc.ListPartnershipsByInfluencerFirstPageParams{
		InfluencerID: influencerID,
		Status:       statusFilter(status),
		Lim:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partnerships first page by influencer", err)
	}
	return toPartnershipViews(rows), nil
}

func (r *PartnershipReadStore) FindByInfluencerKeyset(ctx context.Context, influencerID uuid.UUID, status *partnership.Status, lastRequestedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PartnershipView, error) {
	rows, err := r.queries.ListPartnershipsByInfluencerKeyset(ctx, r.db, sqlc.ListPartnershipsByInfluencerKeysetParams{
		InfluencerID: influencerID,
		Status:       statusFilter(status),
		RequestedAt:  pgconv.TimeToPgtype(lastRequestedAt),
		ID:           lastID,
		Lim:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partnerships keyset by influencer", err)
	}
	return toPartnershipViews(rows), nil
}

func statusFilter(status *partnership.Status) pgtype.Text {
	if status == nil {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(status.String())
}

func toPartnershipView(row sqlc.Partnerships) *queries.PartnershipView {
	return &queries.PartnershipView{
		ID:           row.ID,
		MerchantID:   row.MerchantID,
		InfluencerID: row.InfluencerID,
		Status:       row.Status,
		Message:      pgconv.StringPtrFromPgtype(row.Message),
		Notes:        pgconv.StringPtrFromPgtype(row.Notes),
		RequestedAt:  pgconv.TimeFromPgtype(row.RequestedAt),
		RespondedAt:  pgconv.TimePtrFromPgtype(row.RespondedAt),
	}
}

func toPartnershipViews(rows []sqlc.Partnerships) []*queries.PartnershipView {
	out := make([]*queries.PartnershipView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPartnershipView(row))
	}
	return out
}
