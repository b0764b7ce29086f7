package response

import (
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// StatsResponse renders money with two decimals.
type StatsResponse struct {
	TotalVisits        int64   `json:"total_visits"`
	TotalConversions   int64   `json:"total_conversions"`
	ConversionRate     float64 `json:"conversion_rate"`
	TotalRevenue       string  `json:"total_revenue"`
	TotalCommission    string  `json:"total_commission"`
	MonthlyConversions int64   `json:"monthly_conversions"`
}

type AssignmentStatsResponse struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	ReferralCode string    `json:"referral_code"`
	StatsResponse
}

type AssignmentStatsItemResponse struct {
	AssignmentID   uuid.UUID `json:"assignment_id"`
	PromotionID    uuid.UUID `json:"promotion_id"`
	PromotionTitle string    `json:"promotion_title,omitempty"`
	MerchantID     uuid.UUID `json:"merchant_id"`
	ReferralCode   string    `json:"referral_code"`
	IsActive       bool      `json:"is_active"`
	StatsResponse
}

type InfluencerOverviewResponse struct {
	InfluencerID uuid.UUID                      `json:"influencer_id"`
	Totals       StatsResponse                  `json:"totals"`
	Assignments  []*AssignmentStatsItemResponse `json:"assignments"`
}

type InfluencerStatsItemResponse struct {
	InfluencerID      uuid.UUID `json:"influencer_id"`
	ActiveAssignments int64     `json:"active_assignments"`
	TotalAssignments  int64     `json:"total_assignments"`
	StatsResponse
}

type MerchantInfluencerStatsResponse struct {
	MerchantID        uuid.UUID                      `json:"merchant_id"`
	ActiveAssignments int64                          `json:"active_assignments"`
	Totals            StatsResponse                  `json:"totals"`
	Influencers       []*InfluencerStatsItemResponse `json:"influencers"`
}

func fromStats(s queries.Stats) StatsResponse {
	return StatsResponse{
		TotalVisits:        s.TotalVisits,
		TotalConversions:   s.TotalConversions,
		ConversionRate:     s.ConversionRate,
		TotalRevenue:       s.TotalRevenue.StringFixed(2),
		TotalCommission:    s.TotalCommission.StringFixed(2),
		MonthlyConversions: s.MonthlyConversions,
	}
}

func FromAssignmentStats(s *queries.AssignmentStats) *AssignmentStatsResponse {
	return &AssignmentStatsResponse{
		AssignmentID:  s.AssignmentID,
		ReferralCode:  s.ReferralCode,
		StatsResponse: fromStats(s.Stats),
	}
}

func FromInfluencerOverview(o *queries.InfluencerOverview) *InfluencerOverviewResponse {
	res := &InfluencerOverviewResponse{
		InfluencerID: o.InfluencerID,
		Totals:       fromStats(o.Totals),
		Assignments:  make([]*AssignmentStatsItemResponse, len(o.Assignments)),
	}
	for i, it := range o.Assignments {
		res.Assignments[i] = &AssignmentStatsItemResponse{
			AssignmentID:   it.AssignmentID,
			PromotionID:    it.PromotionID,
			PromotionTitle: it.PromotionTitle,
			MerchantID:     it.MerchantID,
			ReferralCode:   it.ReferralCode,
			IsActive:       it.IsActive,
			StatsResponse:  fromStats(it.Stats),
		}
	}
	return res
}

func FromMerchantInfluencerStats(m *queries.MerchantInfluencerStats) *MerchantInfluencerStatsResponse {
	res := &MerchantInfluencerStatsResponse{
		MerchantID:        m.MerchantID,
		ActiveAssignments: m.ActiveAssignments,
		Totals:            fromStats(m.Totals),
		Influencers:       make([]*InfluencerStatsItemResponse, len(m.Influencers)),
	}
	for i, it := range m.Influencers {
		res.Influencers[i] = &InfluencerStatsItemResponse{
			InfluencerID:      it.InfluencerID,
			ActiveAssignments: it.ActiveAssignments,
			TotalAssignments:  it.TotalAssignments,
			StatsResponse:     fromStats(it.Stats),
		}
	}
	return res
}
