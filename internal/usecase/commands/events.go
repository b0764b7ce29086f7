package commands

import (
	"context"
	"encoding/json"
	"time"

	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outbox event kinds and the topics they are published to.
const (
	EventPartnershipRequested = "partnership.requested"
	EventPartnershipResponded = "partnership.responded"
	EventAssignmentCreated    = "assignment.created"
	EventConversionAttributed = "conversion.attributed"

	TopicPartnerships = "partnerships"
	TopicAssignments  = "assignments"
	TopicConversions  = "conversions"
)

type PartnershipEvent struct {
	PartnershipID uuid.UUID `json:"partnership_id"`
	MerchantID    uuid.UUID `json:"merchant_id"`
	InfluencerID  uuid.UUID `json:"influencer_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type AssignmentCreatedEvent struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	PromotionID  uuid.UUID `json:"promotion_id"`
	MerchantID   uuid.UUID `json:"merchant_id"`
	InfluencerID uuid.UUID `json:"influencer_id"`
	ReferralCode string    `json:"referral_code"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type ConversionAttributedEvent struct {
	PurchaseID       uuid.UUID       `json:"purchase_id"`
	PromotionID      uuid.UUID       `json:"promotion_id"`
	AssignmentID     uuid.UUID       `json:"assignment_id"`
	InfluencerID     uuid.UUID       `json:"influencer_id"`
	ReferralCode     string          `json:"referral_code"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	OccurredAt       time.Time       `json:"occurred_at"`
}

// enqueue writes the event in the caller's transaction. key orders events per aggregate.
func enqueue(ctx context.Context, tx shared.Tx, kind, topic string, key uuid.UUID, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "marshal %s event", kind)
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), kind, topic, key.String(), body, at)
}
