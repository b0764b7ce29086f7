package commands

import (
	"context"

	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterPurchaseInput struct {
	ID          uuid.UUID
	PromotionID uuid.UUID
	MerchantID  uuid.UUID
	ConsumerID  *uuid.UUID
	PaidAmount  decimal.Decimal
}

type PurchaseCommands interface {
	Register(ctx context.Context, in RegisterPurchaseInput) (*purchase.Purchase, error)
	UpdateStatus(ctx context.Context, purchaseID uuid.UUID, status string) (*purchase.Purchase, error)
}

type purchaseUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseUseCase(uow shared.UnitOfWork, clk clock.Clock) PurchaseCommands {
	return &purchaseUseCaseImpl{uow: uow, clock: clk}
}

func (uc *purchaseUseCaseImpl) Register(ctx context.Context, in RegisterPurchaseInput) (*purchase.Purchase, error) {
	p, err := purchase.New(in.ID, in.PromotionID, in.MerchantID, in.ConsumerID, in.PaidAmount, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Purchases().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, purchase.ErrAlreadyExists
		}
		return nil, err
	}
	return p, nil
}

// UpdateStatus moves a purchase along pending → approved|rejected, approved → redeemed.
// The store applies it as a compare-and-swap on the status that was read.
func (uc *purchaseUseCaseImpl) UpdateStatus(ctx context.Context, purchaseID uuid.UUID, status string) (*purchase.Purchase, error) {
	next, err := purchase.NewStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *purchase.Purchase
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().PurchaseByID(ctx, purchaseID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return purchase.ErrNotFound
			}
			return err
		}
		from := current.Status()
		if err := current.TransitionTo(next); err != nil {
			return err
		}
		updated, err = tx.Purchases().UpdateStatus(ctx, tx.DB(), purchaseID, from, next)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return purchase.ErrInvalidTransition
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
