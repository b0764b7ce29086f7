package repository

import (
	"context"
	"time"

	"referral-engine/internal/domain/attribution"
	"referral-engine/internal/infra"
	"referral-engine/internal/infra/repository/converter"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VisitWriteQueries interface {
	CreateVisit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVisitParams) error
	MarkLatestVisitConverted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkLatestVisitConvertedParams) (int64, error)
}

type VisitRepository struct {
	queries VisitWriteQueries
	db      sqlc.DBTX
}

func NewVisitRepository(queries VisitWriteQueries, db sqlc.DBTX) *VisitRepository {
	return &VisitRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VisitRepository) Create(ctx context.Context, tx sqlc.DBTX, v *attribution.Visit) error {
	if err := r.queries.CreateVisit(ctx, tx, converter.VisitToCreateParams(v)); err != nil {
		return infra.WrapRepoErr("failed to record visit", err)
	}
	return nil
}

func (r *VisitRepository) MarkLatestConverted(ctx context.Context, tx sqlc.DBTX, assignmentID, promotionID, purchaseID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.MarkLatestVisitConverted(ctx, tx, sqlc.MarkLatestVisitConvertedParams{
		PurchaseID:   pgconv.UUIDToPgtype(purchaseID),
		ConvertedAt:  pgconv.TimeToPgtype(at),
		AssignmentID: assignmentID,
		PromotionID:  promotionID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark visit converted", err)
	}
	return n > 0, nil
}
