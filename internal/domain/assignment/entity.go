package assignment

import (
	"strings"
	"time"

	"referral-engine/internal/domain/commission"
	"referral-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxPromotionTitleLength = 200

var (
	ErrNoPartnership        = errs.New("no approved partnership between merchant and influencer")
	ErrAlreadyAssigned      = errs.New("influencer already has an active assignment for this promotion")
	ErrNotFound             = errs.New("assignment not found")
	ErrMissingID            = errs.New("promotion, influencer and merchant ids are required")
	ErrNegativePrice        = errs.New("promotion price must not be negative")
	ErrPromotionTitleTooBig = errs.New("promotion title exceeds maximum length")
)

// Promotion is the snapshot of the catalog entry taken at assignment time.
type Promotion struct {
	ID    uuid.UUID
	Title string
	Price *decimal.Decimal
}

type Assignment struct {
	id            uuid.UUID
	promotion     Promotion
	influencerID  uuid.UUID
	merchantID    uuid.UUID
	referralCode  string
	commission    *commission.Rule
	extraDiscount *commission.Rule
	isActive      bool
	assignedAt    time.Time
	deactivatedAt *time.Time
	deletedAt     *time.Time
}

// New builds an active assignment. code must already be parsed or generated.
func New(promotion Promotion, influencerID, merchantID uuid.UUID, code string, rule, discount *commission.Rule, now time.Time) (*Assignment, error) {
	if promotion.ID == uuid.Nil || influencerID == uuid.Nil || merchantID == uuid.Nil {
		return nil, ErrMissingID
	}
	if promotion.Price != nil && promotion.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	promotion.Title = strings.TrimSpace(promotion.Title)
	if len(promotion.Title) > MaxPromotionTitleLength {
		return nil, ErrPromotionTitleTooBig
	}

	return &Assignment{
		id:            uuid.New(),
		promotion:     promotion,
		influencerID:  influencerID,
		merchantID:    merchantID,
		referralCode:  code,
		commission:    rule,
		extraDiscount: discount,
		isActive:      true,
		assignedAt:    now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	promotion Promotion,
	influencerID, merchantID uuid.UUID,
	code string,
	rule, discount *commission.Rule,
	isActive bool,
	assignedAt time.Time,
	deactivatedAt, deletedAt *time.Time,
) *Assignment {
	return &Assignment{
		id:            id,
		promotion:     promotion,
		influencerID:  influencerID,
		merchantID:    merchantID,
		referralCode:  code,
		commission:    rule,
		extraDiscount: discount,
		isActive:      isActive,
		assignedAt:    assignedAt,
		deactivatedAt: deactivatedAt,
		deletedAt:     deletedAt,
	}
}

// WithCode returns a copy carrying a different code, used when a generated
// code collides and has to be replaced.
func (a *Assignment) WithCode(code string) *Assignment {
	cp := *a
	cp.referralCode = code
	return &cp
}

// Commission is the amount owed to the influencer for a sale under this assignment.
func (a *Assignment) Commission(sale decimal.Decimal) decimal.Decimal {
	return commission.Commission(sale, a.commission)
}

// Attributable reports whether new visits or conversions may be credited.
func (a *Assignment) Attributable() bool {
	return a.isActive && a.deletedAt == nil
}

func (a *Assignment) ID() uuid.UUID                    { return a.id }
func (a *Assignment) Promotion() Promotion             { return a.promotion }
func (a *Assignment) PromotionID() uuid.UUID           { return a.promotion.ID }
func (a *Assignment) InfluencerID() uuid.UUID          { return a.influencerID }
func (a *Assignment) MerchantID() uuid.UUID            { return a.merchantID }
func (a *Assignment) ReferralCode() string             { return a.referralCode }
func (a *Assignment) CommissionRule() *commission.Rule { return a.commission }
func (a *Assignment) ExtraDiscount() *commission.Rule  { return a.extraDiscount }
func (a *Assignment) IsActive() bool                   { return a.isActive }
func (a *Assignment) AssignedAt() time.Time            { return a.assignedAt }
func (a *Assignment) DeactivatedAt() *time.Time        { return a.deactivatedAt }
func (a *Assignment) DeletedAt() *time.Time            { return a.deletedAt }
