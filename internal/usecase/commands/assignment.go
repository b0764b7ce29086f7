package commands

import (
	"context"
	"log/slog"
	"strings"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleInput struct {
	Type  string
	Value decimal.Decimal
	Notes string
}

type AssignInput struct {
	MerchantID     uuid.UUID
	InfluencerID   uuid.UUID
	PromotionID    uuid.UUID
	PromotionTitle string
	PromotionPrice *decimal.Decimal
	// ReferralCode is optional. Empty means one is generated.
	ReferralCode  string
	Commission    *RuleInput
	ExtraDiscount *RuleInput
}

type CodeGenerator interface {
	Generate(influencerID, promotionID uuid.UUID, promotionTitle string) (string, error)
}

type AssignmentCommands interface {
	Assign(ctx context.Context, in AssignInput) (*assignment.Assignment, error)
	// Deactivate, Reactivate and Delete are scoped to merchantID and are silent
	// no-ops for assignments the merchant does not own.
	Deactivate(ctx context.Context, assignmentID, merchantID uuid.UUID) error
	Reactivate(ctx context.Context, assignmentID, merchantID uuid.UUID) error
	Delete(ctx context.Context, assignmentID, merchantID uuid.UUID) error
}

type assignmentUseCaseImpl struct {
	uow       shared.UnitOfWork
	generator CodeGenerator
	clock     clock.Clock
}

func NewAssignmentUseCase(uow shared.UnitOfWork, generator CodeGenerator, clk clock.Clock) AssignmentCommands {
	return &assignmentUseCaseImpl{
		uow:       uow,
		generator: generator,
		clock:     clk,
	}
}

func (uc *assignmentUseCaseImpl) Assign(ctx context.Context, in AssignInput) (*assignment.Assignment, error) {
	rule, err := parseRule(in.Commission)
	if err != nil {
		return nil, err
	}
	discount, err := parseRule(in.ExtraDiscount)
	if err != nil {
		return nil, err
	}
	promotion := assignment.Promotion{ID: in.PromotionID, Title: in.PromotionTitle, Price: in.PromotionPrice}

	draft, err := assignment.New(promotion, in.InfluencerID, in.MerchantID, "", rule, discount, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	approved, err := reads.HasApprovedPartnership(ctx, in.MerchantID, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, assignment.ErrNoPartnership
	}
	assigned, err := reads.HasActiveAssignment(ctx, in.PromotionID, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, assignment.ErrAlreadyAssigned
	}

	if strings.TrimSpace(in.ReferralCode) != "" {
		return uc.assignManual(ctx, reads, draft, in.ReferralCode)
	}
	return uc.assignGenerated(ctx, reads, draft)
}

func (uc *assignmentUseCaseImpl) assignManual(ctx context.Context, reads shared.CommandReads, draft *assignment.Assignment, raw string) (*assignment.Assignment, error) {
	code, err := assignment.ParseCode(raw)
	if err != nil {
		return nil, err
	}
	taken, err := reads.ReferralCodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, assignment.ErrCodeAlreadyExists
	}

	a := draft.WithCode(code)
	if err := uc.create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// assignGenerated runs each attempt in its own transaction, since a unique
// violation aborts the transaction it happens in.
func (uc *assignmentUseCaseImpl) assignGenerated(ctx context.Context, reads shared.CommandReads, draft *assignment.Assignment) (*assignment.Assignment, error) {
	for attempt := 1; attempt <= assignment.MaxGenerateAttempts; attempt++ {
		code, err := uc.generator.Generate(draft.InfluencerID(), draft.PromotionID(), draft.Promotion().Title)
		if err != nil {
			return nil, err
		}
		taken, err := reads.ReferralCodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if taken {
			slog.Debug("generated referral code collided", "attempt", attempt, "code", code)
			continue
		}

		a := draft.WithCode(code)
		err = uc.create(ctx, a)
		if err == nil {
			return a, nil
		}
		if !errs.Is(err, assignment.ErrCodeAlreadyExists) {
			return nil, err
		}
		slog.Debug("generated referral code lost insert race", "attempt", attempt, "code", code)
	}
	return nil, assignment.ErrCodeGenerationExhausted
}

func (uc *assignmentUseCaseImpl) create(ctx context.Context, a *assignment.Assignment) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Assignments().Create(ctx, tx.DB(), a); err != nil {
			return err
		}
		return enqueue(ctx, tx, EventAssignmentCreated, TopicAssignments, a.ID(), AssignmentCreatedEvent{
			AssignmentID: a.ID(),
			PromotionID:  a.PromotionID(),
			MerchantID:   a.MerchantID(),
			InfluencerID: a.InfluencerID(),
			ReferralCode: a.ReferralCode(),
			OccurredAt:   a.AssignedAt(),
		}, a.AssignedAt())
	})
	return mapAssignmentConflict(err)
}

func (uc *assignmentUseCaseImpl) Deactivate(ctx context.Context, assignmentID, merchantID uuid.UUID) error {
	return uc.setActive(ctx, assignmentID, merchantID, false)
}

func (uc *assignmentUseCaseImpl) Reactivate(ctx context.Context, assignmentID, merchantID uuid.UUID) error {
	return uc.setActive(ctx, assignmentID, merchantID, true)
}

func (uc *assignmentUseCaseImpl) setActive(ctx context.Context, assignmentID, merchantID uuid.UUID, active bool) error {
	now := uc.clock.Now()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Assignments().SetActive(ctx, tx.DB(), assignmentID, merchantID, active, now)
		return err
	})
	return mapAssignmentConflict(err)
}

func (uc *assignmentUseCaseImpl) Delete(ctx context.Context, assignmentID, merchantID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Assignments().SoftDelete(ctx, tx.DB(), assignmentID, merchantID, now)
		return err
	})
}

// mapAssignmentConflict turns unique violations into the conflict they stand for.
func mapAssignmentConflict(err error) error {
	if err == nil || !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	switch infra.ConstraintName(err) {
	case infra.ConstraintReferralCode:
		return errs.Mark(err, assignment.ErrCodeAlreadyExists)
	case infra.ConstraintActivePromotionMember:
		return errs.Mark(err, assignment.ErrAlreadyAssigned)
	default:
		return err
	}
}

func parseRule(in *RuleInput) (*commission.Rule, error) {
	if in == nil {
		return nil, nil
	}
	return commission.NewRule(in.Type, in.Value, in.Notes)
}
