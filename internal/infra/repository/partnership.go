package repository

import (
	"context"
	"time"

	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/infra"
	"referral-engine/internal/infra/repository/converter"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PartnershipWriteQueries interface {
	UpsertPartnershipRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPartnershipRequestParams) (sqlc.Partnerships, error)
	GetPartnershipByPair(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPartnershipByPairParams) (sqlc.Partnerships, error)
	RespondPartnership(ctx context.Context, db sqlc.DBTX, arg sqlc.RespondPartnershipParams) (sqlc.Partnerships, error)
	DeletePendingPartnership(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePendingPartnershipParams) (int64, error)
}

type PartnershipRepository struct {
	queries PartnershipWriteQueries
	db      sqlc.DBTX
}

func NewPartnershipRepository(queries PartnershipWriteQueries, db sqlc.DBTX) *PartnershipRepository {
	return &PartnershipRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertRequest returns the stored row and ok=true when the request was written.
// When the pair is pending or approved nothing is written and the existing row is
// returned with ok=false.
func (r *PartnershipRepository) UpsertRequest(ctx context.Context, tx sqlc.DBTX, p *partnership.Partnership) (*partnership.Partnership, bool, error) {
	row, err := r.queries.UpsertPartnershipRequest(ctx, tx, converter.PartnershipToUpsertParams(p))
	if err == nil {
		return converter.PartnershipFromRow(row), true, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, false, infra.WrapRepoErr("failed to upsert partnership request", err)
	}

	existing, err := r.queries.GetPartnershipByPair(ctx, tx, sqlc.GetPartnershipByPairParams{
		MerchantID:   p.MerchantID(),
		InfluencerID: p.InfluencerID(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, infra.WrapRepoErr("partnership disappeared during request", err, infra.KindNotFound)
		}
		return nil, false, infra.WrapRepoErr("failed to get partnership by pair", err)
	}
	return converter.PartnershipFromRow(existing), false, nil
}

// Respond only touches a pending row addressed to influencerID.
func (r *PartnershipRepository) Respond(ctx context.Context, tx sqlc.DBTX, id, influencerID uuid.UUID, status partnership.Status, notes string, at time.Time) (*partnership.Partnership, error) {
	row, err := r.queries.RespondPartnership(ctx, tx, sqlc.RespondPartnershipParams{
		Status:       status.String(),
		Notes:        pgconv.OptionalStringToPgtype(notes),
		RespondedAt:  pgconv.TimeToPgtype(at),
		ID:           id,
		InfluencerID: influencerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending partnership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to respond to partnership", err)
	}
	return converter.PartnershipFromRow(row), nil
}

func (r *PartnershipRepository) DeletePending(ctx context.Context, tx sqlc.DBTX, id, merchantID uuid.UUID) (bool, error) {
	n, err := r.queries.DeletePendingPartnership(ctx, tx, sqlc.DeletePendingPartnershipParams{
		ID:         id,
		MerchantID: merchantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete pending partnership", err)
	}
	return n > 0, nil
}
