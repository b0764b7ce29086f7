package shared

import (
	"context"
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/attribution"
	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/domain/purchase"
	sqlc "referral-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Partnerships() PartnershipRepository
	Assignments() AssignmentRepository
	Visits() VisitRepository
	Purchases() PurchaseRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PartnershipByPair(ctx context.Context, merchantID, influencerID uuid.UUID) (*partnership.Partnership, error)
	HasApprovedPartnership(ctx context.Context, merchantID, influencerID uuid.UUID) (bool, error)
	HasActiveAssignment(ctx context.Context, promotionID, influencerID uuid.UUID) (bool, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	// AssignmentByCode resolves an active, non-deleted assignment; lookup is case-insensitive.
	AssignmentByCode(ctx context.Context, code string) (*assignment.Assignment, error)
	AssignmentByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
	PurchaseByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error)
}

type PartnershipRepository interface {
	// UpsertRequest inserts a pending row or reopens a rejected one. ok is false when
	// the pair already exists in a state that cannot be reopened.
	UpsertRequest(ctx context.Context, tx sqlc.DBTX, p *partnership.Partnership) (saved *partnership.Partnership, ok bool, err error)
	Respond(ctx context.Context, tx sqlc.DBTX, id, influencerID uuid.UUID, status partnership.Status, notes string, at time.Time) (*partnership.Partnership, error)
	DeletePending(ctx context.Context, tx sqlc.DBTX, id, merchantID uuid.UUID) (bool, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *assignment.Assignment) error
	SetActive(ctx context.Context, tx sqlc.DBTX, id, merchantID uuid.UUID, active bool, at time.Time) (bool, error)
	SoftDelete(ctx context.Context, tx sqlc.DBTX, id, merchantID uuid.UUID, at time.Time) (bool, error)
}

type VisitRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *attribution.Visit) error
	// MarkLatestConverted flags the newest unconverted visit for the assignment and promotion.
	MarkLatestConverted(ctx context.Context, tx sqlc.DBTX, assignmentID, promotionID, purchaseID uuid.UUID, at time.Time) (bool, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error
	// Attribute credits a purchase once; it returns false if it was already attributed.
	Attribute(ctx context.Context, tx sqlc.DBTX, purchaseID, promotionID uuid.UUID, code string, influencerID uuid.UUID, amount decimal.Decimal, at time.Time) (bool, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to purchase.Status) (*purchase.Purchase, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, kind, topic, key string, payload []byte, runAt time.Time) error
}
