package commands

import (
	"context"
	"log/slog"
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/attribution"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// errNotAttributed rolls back a conversion transaction that found nothing to credit.
var errNotAttributed = errs.New("purchase not attributed")

type RecordVisitInput struct {
	ReferralCode string
	PromotionID  uuid.UUID
	UserAgent    string
	Referrer     string
}

// AttributionCommands never fail toward the caller. Every problem is logged
// and reported as false.
type AttributionCommands interface {
	RecordVisit(ctx context.Context, in RecordVisitInput, carrier shared.TokenCarrier) bool
	ResolveConversion(ctx context.Context, purchaseID, promotionID uuid.UUID, carrier shared.TokenCarrier) bool
}

type attributionUseCaseImpl struct {
	uow    shared.UnitOfWork
	codec  shared.TokenCodec
	cache  shared.CounterCache
	clock  clock.Clock
	window time.Duration
}

func NewAttributionUseCase(uow shared.UnitOfWork, codec shared.TokenCodec, cache shared.CounterCache, clk clock.Clock, window time.Duration) AttributionCommands {
	if window <= 0 {
		window = attribution.DefaultWindow
	}
	return &attributionUseCaseImpl{
		uow:    uow,
		codec:  codec,
		cache:  cache,
		clock:  clk,
		window: window,
	}
}

func (uc *attributionUseCaseImpl) RecordVisit(ctx context.Context, in RecordVisitInput, carrier shared.TokenCarrier) bool {
	code := assignment.NormalizeLookup(in.ReferralCode)
	if code == "" {
		return false
	}

	a, ok := uc.resolve(ctx, code)
	if !ok {
		return false
	}
	if a.PromotionID() != in.PromotionID {
		slog.Debug("visit dropped: promotion mismatch", "code", code, "promotion_id", in.PromotionID)
		return false
	}

	now := uc.clock.Now()
	visit := attribution.NewVisit(a.ID(), a.PromotionID(), a.InfluencerID(), in.UserAgent, in.Referrer, now)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Visits().Create(ctx, tx.DB(), visit)
	})
	if err != nil {
		slog.Warn("visit not recorded", "code", code, "error", err.Error())
		return false
	}

	value, err := uc.codec.Encode(attribution.NewToken(a.ReferralCode(), now))
	if err != nil {
		slog.Warn("attribution token not issued", "code", code, "error", err.Error())
		return false
	}
	carrier.Write(value, uc.window)
	uc.cache.IncrVisits(ctx, a.ID())
	return true
}

func (uc *attributionUseCaseImpl) ResolveConversion(ctx context.Context, purchaseID, promotionID uuid.UUID, carrier shared.TokenCarrier) bool {
	raw, ok := carrier.Read()
	if !ok {
		return false
	}
	token, err := uc.codec.Decode(raw)
	if err != nil {
		slog.Debug("attribution token rejected", "error", err.Error())
		carrier.Clear()
		return false
	}

	now := uc.clock.Now()
	if token.Expired(now, uc.window) {
		carrier.Clear()
		return false
	}

	a, ok := uc.resolve(ctx, token.Code)
	if !ok {
		carrier.Clear()
		return false
	}
	// The token belongs to another promotion's funnel; keep it for that purchase.
	if a.PromotionID() != promotionID {
		return false
	}

	converted := false
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		converted = false
		p, err := tx.Reads().PurchaseByID(ctx, purchaseID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errNotAttributed
			}
			return err
		}
		if p.PromotionID() != promotionID || p.Attributed() {
			return errNotAttributed
		}

		amount := a.Commission(p.PaidAmount())
		written, err := tx.Purchases().Attribute(ctx, tx.DB(), purchaseID, promotionID, a.ReferralCode(), a.InfluencerID(), amount, now)
		if err != nil {
			return err
		}
		if !written {
			return errNotAttributed
		}

		converted, err = tx.Visits().MarkLatestConverted(ctx, tx.DB(), a.ID(), promotionID, purchaseID, now)
		if err != nil {
			return err
		}

		return enqueue(ctx, tx, EventConversionAttributed, TopicConversions, purchaseID, ConversionAttributedEvent{
			PurchaseID:       purchaseID,
			PromotionID:      promotionID,
			AssignmentID:     a.ID(),
			InfluencerID:     a.InfluencerID(),
			ReferralCode:     a.ReferralCode(),
			PaidAmount:       p.PaidAmount(),
			CommissionAmount: amount,
			OccurredAt:       now,
		}, now)
	})
	if err != nil {
		if !errs.Is(err, errNotAttributed) {
			slog.Warn("conversion not attributed", "purchase_id", purchaseID, "error", err.Error())
		}
		return false
	}

	carrier.Clear()
	if converted {
		uc.cache.IncrConversions(ctx, a.ID())
	}
	return true
}

// resolve finds the active assignment behind a code. Misses are expected traffic.
func (uc *attributionUseCaseImpl) resolve(ctx context.Context, code string) (*assignment.Assignment, bool) {
	a, err := uc.uow.CommandReads().AssignmentByCode(ctx, code)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("referral code lookup failed", "code", code, "error", err.Error())
		}
		return nil, false
	}
	if !a.Attributable() {
		return nil, false
	}
	return a, true
}
