package repository

import (
	"context"
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/infra"
	"referral-engine/internal/infra/repository/converter"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AssignmentWriteQueries interface {
	CreateAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAssignmentParams) error
	SetAssignmentActive(ctx context.Context, db sqlc.DBTX, arg sqlc.SetAssignmentActiveParams) (int64, error)
	SoftDeleteAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteAssignmentParams) (int64, error)
}

type AssignmentRepository struct {
	queries AssignmentWriteQueries
	db      sqlc.DBTX
}

func NewAssignmentRepository(queries AssignmentWriteQueries, db sqlc.DBTX) *AssignmentRepository {
	return &AssignmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces unique violations as KindDuplicateKey with the constraint name,
// so callers can tell a taken code from a duplicate active pair.
func (r *AssignmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *assignment.Assignment) error {
	if err := r.queries.CreateAssignment(ctx, tx, converter.AssignmentToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create assignment", err)
	}
	return nil
}

// SetActive reports false when no non-deleted assignment of merchantID matched.
func (r *AssignmentRepository) SetActive(ctx context.Context, tx sqlc.DBTX, id, merchantID uuid.UUID, active bool, at time.Time) (bool, error) {
	n, err := r.queries.SetAssignmentActive(ctx, tx, sqlc.SetAssignmentActiveParams{
		IsActive:   active,
		ChangedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		MerchantID: merchantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to change assignment state", err)
	}
	return n > 0, nil
}

func (r *AssignmentRepository) SoftDelete(ctx context.Context, tx sqlc.DBTX, id, merchantID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.SoftDeleteAssignment(ctx, tx, sqlc.SoftDeleteAssignmentParams{
		DeletedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		MerchantID: merchantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete assignment", err)
	}
	return n > 0, nil
}
