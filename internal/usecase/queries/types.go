package queries

import (
	"time"

	"referral-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrAccessDenied  = errs.New("access denied")
)

// PartnershipView represents read-optimized partnership data
type PartnershipView struct {
	ID           uuid.UUID  `json:"id"`
	MerchantID   uuid.UUID  `json:"merchant_id"`
	InfluencerID uuid.UUID  `json:"influencer_id"`
	Status       string     `json:"status"`
	Message      *string    `json:"message,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
}

type RuleView struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
	Notes string          `json:"notes,omitempty"`
}

// AssignmentView represents read-optimized assignment data
type AssignmentView struct {
	ID             uuid.UUID        `json:"id"`
	PromotionID    uuid.UUID        `json:"promotion_id"`
	PromotionTitle string           `json:"promotion_title,omitempty"`
	PromotionPrice *decimal.Decimal `json:"promotion_price,omitempty"`
	InfluencerID   uuid.UUID        `json:"influencer_id"`
	MerchantID     uuid.UUID        `json:"merchant_id"`
	ReferralCode   string           `json:"referral_code"`
	Commission     *RuleView        `json:"commission,omitempty"`
	ExtraDiscount  *RuleView        `json:"extra_discount,omitempty"`
	IsActive       bool             `json:"is_active"`
	AssignedAt     time.Time        `json:"assigned_at"`
	DeactivatedAt  *time.Time       `json:"deactivated_at,omitempty"`
	DeletedAt      *time.Time       `json:"-"`
}

// PurchaseView represents the stored projection of a checkout purchase
type PurchaseView struct {
	ID               uuid.UUID        `json:"id"`
	PromotionID      uuid.UUID        `json:"promotion_id"`
	MerchantID       uuid.UUID        `json:"merchant_id"`
	ConsumerID       *uuid.UUID       `json:"consumer_id,omitempty"`
	PaidAmount       decimal.Decimal  `json:"paid_amount"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	ReferralCode     *string          `json:"referral_code,omitempty"`
	InfluencerID     *uuid.UUID       `json:"influencer_id,omitempty"`
	CommissionAmount *decimal.Decimal `json:"commission_amount,omitempty"`
}

// Stats is one rollup of referral activity. Money is rounded to cents.
type Stats struct {
	TotalVisits        int64           `json:"total_visits"`
	TotalConversions   int64           `json:"total_conversions"`
	ConversionRate     float64         `json:"conversion_rate"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCommission    decimal.Decimal `json:"total_commission"`
	MonthlyConversions int64           `json:"monthly_conversions"`
}

type AssignmentStats struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	ReferralCode string    `json:"referral_code"`
	Stats
}

type AssignmentStatsItem struct {
	AssignmentID   uuid.UUID `json:"assignment_id"`
	PromotionID    uuid.UUID `json:"promotion_id"`
	PromotionTitle string    `json:"promotion_title,omitempty"`
	MerchantID     uuid.UUID `json:"merchant_id"`
	ReferralCode   string    `json:"referral_code"`
	IsActive       bool      `json:"is_active"`
	Stats
}

type InfluencerOverview struct {
	InfluencerID uuid.UUID              `json:"influencer_id"`
	Totals       Stats                  `json:"totals"`
	Assignments  []*AssignmentStatsItem `json:"assignments"`
}

type InfluencerStatsItem struct {
	InfluencerID      uuid.UUID `json:"influencer_id"`
	ActiveAssignments int64     `json:"active_assignments"`
	TotalAssignments  int64     `json:"total_assignments"`
	Stats
}

type MerchantInfluencerStats struct {
	MerchantID        uuid.UUID              `json:"merchant_id"`
	ActiveAssignments int64                  `json:"active_assignments"`
	Totals            Stats                  `json:"totals"`
	Influencers       []*InfluencerStatsItem `json:"influencers"`
}

// Raw rows returned by the stats read store, before rates and rounding.
type VisitCounts struct {
	TotalVisits      int64
	TotalConversions int64
}

type PurchaseTotals struct {
	TotalRevenue       decimal.Decimal
	TotalCommission    decimal.Decimal
	MonthlyConversions int64
}

type AssignmentStatsRow struct {
	AssignmentID   uuid.UUID
	PromotionID    uuid.UUID
	PromotionTitle string
	MerchantID     uuid.UUID
	ReferralCode   string
	IsActive       bool
	VisitCounts
	PurchaseTotals
}

type InfluencerStatsRow struct {
	InfluencerID      uuid.UUID
	ActiveAssignments int64
	TotalAssignments  int64
	VisitCounts
	PurchaseTotals
}
