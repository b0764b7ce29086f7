package queries

import (
	"context"
	"log/slog"
	"time"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatsReadStore interface {
	AssignmentVisitCounts(ctx context.Context, assignmentID uuid.UUID) (VisitCounts, error)
	AssignmentPurchaseTotals(ctx context.Context, referralCode string, monthStart time.Time) (PurchaseTotals, error)
	InfluencerTotals(ctx context.Context, influencerID uuid.UUID, monthStart time.Time) (VisitCounts, PurchaseTotals, error)
	InfluencerAssignmentStats(ctx context.Context, influencerID uuid.UUID, monthStart time.Time) ([]*AssignmentStatsRow, error)
	MerchantInfluencerStats(ctx context.Context, merchantID uuid.UUID, monthStart time.Time) ([]*InfluencerStatsRow, error)
}

type StatsQueries interface {
	// AssignmentStats is visible to the assignment's merchant and influencer.
	AssignmentStats(ctx context.Context, assignmentID, partyID uuid.UUID) (*AssignmentStats, error)
	InfluencerOverview(ctx context.Context, influencerID uuid.UUID) (*InfluencerOverview, error)
	MerchantInfluencerStats(ctx context.Context, merchantID uuid.UUID) (*MerchantInfluencerStats, error)
}

type statsQueriesImpl struct {
	stats       StatsReadStore
	assignments AssignmentReadStore
	cache       shared.CounterCache
	clock       clock.Clock
	loc         *time.Location
}

func NewStatsQueries(stats StatsReadStore, assignments AssignmentReadStore, cache shared.CounterCache, clk clock.Clock, cfg config.Config) (StatsQueries, error) {
	loc, err := cfg.Stats.Location()
	if err != nil {
		return nil, err
	}
	return &statsQueriesImpl{
		stats:       stats,
		assignments: assignments,
		cache:       cache,
		clock:       clk,
		loc:         loc,
	}, nil
}

func (q *statsQueriesImpl) monthStart() time.Time {
	return clock.StartOfMonth(q.clock.Now(), q.loc)
}

func (q *statsQueriesImpl) AssignmentStats(ctx context.Context, assignmentID, partyID uuid.UUID) (*AssignmentStats, error) {
	view, err := q.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, assignment.ErrNotFound
		}
		return nil, err
	}
	if view.MerchantID != partyID && view.InfluencerID != partyID {
		return nil, assignment.ErrNotFound
	}

	counts, err := q.visitCounts(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	totals, err := q.stats.AssignmentPurchaseTotals(ctx, view.ReferralCode, q.monthStart())
	if err != nil {
		return nil, err
	}

	return &AssignmentStats{
		AssignmentID: view.ID,
		ReferralCode: view.ReferralCode,
		Stats:        buildStats(counts, totals),
	}, nil
}

// visitCounts reads through the counter cache and seeds it on a miss.
func (q *statsQueriesImpl) visitCounts(ctx context.Context, assignmentID uuid.UUID) (VisitCounts, error) {
	c, epoch, ok := q.cache.Get(ctx, assignmentID)
	if ok {
		return VisitCounts{TotalVisits: c.Visits, TotalConversions: c.Conversions}, nil
	}

	counts, err := q.stats.AssignmentVisitCounts(ctx, assignmentID)
	if err != nil {
		return VisitCounts{}, err
	}
	q.cache.Seed(ctx, assignmentID, epoch, shared.Counters{Visits: counts.TotalVisits, Conversions: counts.TotalConversions})
	slog.DebugContext(ctx, "seeded assignment counters", "assignment_id", assignmentID, "visits", counts.TotalVisits)
	return counts, nil
}

func (q *statsQueriesImpl) InfluencerOverview(ctx context.Context, influencerID uuid.UUID) (*InfluencerOverview, error) {
	monthStart := q.monthStart()

	counts, totals, err := q.stats.InfluencerTotals(ctx, influencerID, monthStart)
	if err != nil {
		return nil, err
	}
	rows, err := q.stats.InfluencerAssignmentStats(ctx, influencerID, monthStart)
	if err != nil {
		return nil, err
	}

	items := make([]*AssignmentStatsItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &AssignmentStatsItem{
			AssignmentID:   row.AssignmentID,
			PromotionID:    row.PromotionID,
			PromotionTitle: row.PromotionTitle,
			MerchantID:     row.MerchantID,
			ReferralCode:   row.ReferralCode,
			IsActive:       row.IsActive,
			Stats:          buildStats(row.VisitCounts, row.PurchaseTotals),
		})
	}

	return &InfluencerOverview{
		InfluencerID: influencerID,
		Totals:       buildStats(counts, totals),
		Assignments:  items,
	}, nil
}

func (q *statsQueriesImpl) MerchantInfluencerStats(ctx context.Context, merchantID uuid.UUID) (*MerchantInfluencerStats, error) {
	rows, err := q.stats.MerchantInfluencerStats(ctx, merchantID, q.monthStart())
	if err != nil {
		return nil, err
	}

	var sumCounts VisitCounts
	sumTotals := PurchaseTotals{TotalRevenue: decimal.Zero, TotalCommission: decimal.Zero}
	var active int64

	items := make([]*InfluencerStatsItem, 0, len(rows))
	for _, row := range rows {
		sumCounts.TotalVisits += row.TotalVisits
		sumCounts.TotalConversions += row.TotalConversions
		sumTotals.TotalRevenue = sumTotals.TotalRevenue.Add(row.TotalRevenue)
		sumTotals.TotalCommission = sumTotals.TotalCommission.Add(row.TotalCommission)
		sumTotals.MonthlyConversions += row.MonthlyConversions
		active += row.ActiveAssignments

		items = append(items, &InfluencerStatsItem{
			InfluencerID:      row.InfluencerID,
			ActiveAssignments: row.ActiveAssignments,
			TotalAssignments:  row.TotalAssignments,
			Stats:             buildStats(row.VisitCounts, row.PurchaseTotals),
		})
	}

	return &MerchantInfluencerStats{
		MerchantID:        merchantID,
		ActiveAssignments: active,
		Totals:            buildStats(sumCounts, sumTotals),
		Influencers:       items,
	}, nil
}

// buildStats rounds money only here, after aggregation.
func buildStats(c VisitCounts, t PurchaseTotals) Stats {
	return Stats{
		TotalVisits:        c.TotalVisits,
		TotalConversions:   c.TotalConversions,
		ConversionRate:     ConversionRate(c.TotalConversions, c.TotalVisits),
		TotalRevenue:       commission.Round2(t.TotalRevenue),
		TotalCommission:    commission.Round2(t.TotalCommission),
		MonthlyConversions: t.MonthlyConversions,
	}
}

// ConversionRate is conversions/visits, and 0 when there are no visits.
func ConversionRate(conversions, visits int64) float64 {
	if visits == 0 {
		return 0
	}
	return float64(conversions) / float64(visits)
}
