package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is the projection of a checkout record this engine attributes and
// aggregates. Attribution fields are written at most once.
type Purchase struct {
	id               uuid.UUID
	promotionID      uuid.UUID
	merchantID       uuid.UUID
	consumerID       *uuid.UUID
	paidAmount       decimal.Decimal
	status           Status
	createdAt        time.Time
	referralCode     *string
	influencerID     *uuid.UUID
	commissionAmount *decimal.Decimal
}

// New registers a pending purchase. A zero id lets the store assign one.
func New(id, promotionID, merchantID uuid.UUID, consumerID *uuid.UUID, paidAmount decimal.Decimal, now time.Time) (*Purchase, error) {
	if promotionID == uuid.Nil || merchantID == uuid.Nil {
		return nil, ErrMissingID
	}
	if !paidAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Purchase{
		id:          id,
		promotionID: promotionID,
		merchantID:  merchantID,
		consumerID:  consumerID,
		paidAmount:  paidAmount,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id, promotionID, merchantID uuid.UUID,
	consumerID *uuid.UUID,
	paidAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
	referralCode *string,
	influencerID *uuid.UUID,
	commissionAmount *decimal.Decimal,
) *Purchase {
	return &Purchase{
		id:               id,
		promotionID:      promotionID,
		merchantID:       merchantID,
		consumerID:       consumerID,
		paidAmount:       paidAmount,
		status:           status,
		createdAt:        createdAt,
		referralCode:     referralCode,
		influencerID:     influencerID,
		commissionAmount: commissionAmount,
	}
}

// Attributed reports whether a referral has already been credited.
func (p *Purchase) Attributed() bool {
	return p.referralCode != nil
}

// TransitionTo validates a status move and returns the new status.
func (p *Purchase) TransitionTo(next Status) error {
	if !p.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.status = next
	return nil
}

func (p *Purchase) ID() uuid.UUID                      { return p.id }
func (p *Purchase) PromotionID() uuid.UUID             { return p.promotionID }
func (p *Purchase) MerchantID() uuid.UUID              { return p.merchantID }
func (p *Purchase) ConsumerID() *uuid.UUID             { return p.consumerID }
func (p *Purchase) PaidAmount() decimal.Decimal        { return p.paidAmount }
func (p *Purchase) Status() Status                     { return p.status }
func (p *Purchase) CreatedAt() time.Time               { return p.createdAt }
func (p *Purchase) ReferralCode() *string              { return p.referralCode }
func (p *Purchase) InfluencerID() *uuid.UUID           { return p.influencerID }
func (p *Purchase) CommissionAmount() *decimal.Decimal { return p.commissionAmount }
