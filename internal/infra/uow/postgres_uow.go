package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/infra/readstore"
	"referral-engine/internal/infra/repository"
	"referral-engine/internal/infra/repository/converter"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	partnershipRepo shared.PartnershipRepository
	assignmentRepo  shared.AssignmentRepository
	visitRepo       shared.VisitRepository
	purchaseRepo    shared.PurchaseRepository
	outboxRepo      shared.OutboxRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Partnerships() shared.PartnershipRepository {
	if t.partnershipRepo == nil {
		t.partnershipRepo = repository.NewPartnershipRepository(t.uow.q, t.dbtx)
	}
	return t.partnershipRepo
}

func (t *pgTx) Assignments() shared.AssignmentRepository {
	if t.assignmentRepo == nil {
		t.assignmentRepo = repository.NewAssignmentRepository(t.uow.q, t.dbtx)
	}
	return t.assignmentRepo
}

func (t *pgTx) Visits() shared.VisitRepository {
	if t.visitRepo == nil {
		t.visitRepo = repository.NewVisitRepository(t.uow.q, t.dbtx)
	}
	return t.visitRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository(t.uow.q, t.dbtx)
	}
	return t.purchaseRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	partnershipStore *readstore.PartnershipReadStore
	assignmentStore  *readstore.AssignmentReadStore
	purchaseStore    *readstore.PurchaseReadStore
}

func (r *commandReads) partnerships() *readstore.PartnershipReadStore {
	if r.partnershipStore == nil {
		r.partnershipStore = readstore.NewPartnershipReadStore(r.uow.q, r.dbtx)
	}
	return r.partnershipStore
}

func (r *commandReads) assignments() *readstore.AssignmentReadStore {
	if r.assignmentStore == nil {
		r.assignmentStore = readstore.NewAssignmentReadStore(r.uow.q, r.dbtx)
	}
	return r.assignmentStore
}

func (r *commandReads) purchases() *readstore.PurchaseReadStore {
	if r.purchaseStore == nil {
		r.purchaseStore = readstore.NewPurchaseReadStore(r.uow.q, r.dbtx)
	}
	return r.purchaseStore
}

func (r *commandReads) PartnershipByPair(ctx context.Context, merchantID, influencerID uuid.UUID) (*partnership.Partnership, error) {
	view, err := r.partnerships().FindByPair(ctx, merchantID, influencerID)
	if err != nil {
		return nil, err
	}
	return converter.PartnershipFromView(view), nil
}

func (r *commandReads) HasApprovedPartnership(ctx context.Context, merchantID, influencerID uuid.UUID) (bool, error) {
	return r.partnerships().ApprovedExists(ctx, merchantID, influencerID)
}

func (r *commandReads) HasActiveAssignment(ctx context.Context, promotionID, influencerID uuid.UUID) (bool, error) {
	return r.assignments().ActivePairExists(ctx, promotionID, influencerID)
}

func (r *commandReads) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	return r.assignments().CodeExists(ctx, code)
}

func (r *commandReads) AssignmentByCode(ctx context.Context, code string) (*assignment.Assignment, error) {
	view, err := r.assignments().FindActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return converter.AssignmentFromView(view), nil
}

func (r *commandReads) AssignmentByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	view, err := r.assignments().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AssignmentFromView(view), nil
}

func (r *commandReads) PurchaseByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	view, err := r.purchases().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.PurchaseFromView(view), nil
}
