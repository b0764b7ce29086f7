package commands

import (
	"context"

	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestPartnershipInput struct {
	MerchantID   uuid.UUID
	InfluencerID uuid.UUID
	Message      string
}

type RespondPartnershipInput struct {
	PartnershipID uuid.UUID
	InfluencerID  uuid.UUID
	Action        string
	Notes         string
}

type PartnershipCommands interface {
	// Request fails with ErrAlreadyPending or ErrAlreadyApproved when the pair
	// already has a live row. A rejected row is reopened as pending.
	Request(ctx context.Context, in RequestPartnershipInput) (*partnership.Partnership, error)
	Respond(ctx context.Context, in RespondPartnershipInput) (*partnership.Partnership, error)
	// Cancel is a silent no-op unless the partnership is pending and owned by merchantID.
	Cancel(ctx context.Context, partnershipID, merchantID uuid.UUID) error
}

type partnershipUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPartnershipUseCase(uow shared.UnitOfWork, clk clock.Clock) PartnershipCommands {
	return &partnershipUseCaseImpl{uow: uow, clock: clk}
}

func (uc *partnershipUseCaseImpl) Request(ctx context.Context, in RequestPartnershipInput) (*partnership.Partnership, error) {
	req, err := partnership.NewRequest(in.MerchantID, in.InfluencerID, in.Message, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// The upsert reads back the row on conflict; a row deleted in between is retried once.
	var saved *partnership.Partnership
	for attempt := 0; attempt < 2; attempt++ {
		saved, err = uc.request(ctx, req)
		if err == nil || !infra.IsKind(err, infra.KindNotFound) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (uc *partnershipUseCaseImpl) request(ctx context.Context, req *partnership.Partnership) (*partnership.Partnership, error) {
	var saved *partnership.Partnership
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, written, err := tx.Partnerships().UpsertRequest(ctx, tx.DB(), req)
		if err != nil {
			return err
		}
		if !written {
			return partnership.ConflictFor(row.Status())
		}
		saved = row
		return enqueue(ctx, tx, EventPartnershipRequested, TopicPartnerships, row.ID(), PartnershipEvent{
			PartnershipID: row.ID(),
			MerchantID:    row.MerchantID(),
			InfluencerID:  row.InfluencerID(),
			Status:        row.Status().String(),
			OccurredAt:    row.RequestedAt(),
		}, row.RequestedAt())
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (uc *partnershipUseCaseImpl) Respond(ctx context.Context, in RespondPartnershipInput) (*partnership.Partnership, error) {
	action, err := partnership.NewAction(in.Action)
	if err != nil {
		return nil, err
	}
	notes, err := partnership.NewResponseNotes(in.Notes)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var updated *partnership.Partnership
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.Partnerships().Respond(ctx, tx.DB(), in.PartnershipID, in.InfluencerID, action.Status(), notes, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return partnership.ErrNotFound
			}
			return err
		}
		updated = row
		return enqueue(ctx, tx, EventPartnershipResponded, TopicPartnerships, row.ID(), PartnershipEvent{
			PartnershipID: row.ID(),
			MerchantID:    row.MerchantID(),
			InfluencerID:  row.InfluencerID(),
			Status:        row.Status().String(),
			OccurredAt:    now,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *partnershipUseCaseImpl) Cancel(ctx context.Context, partnershipID, merchantID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Partnerships().DeletePending(ctx, tx.DB(), partnershipID, merchantID)
		return err
	})
}
