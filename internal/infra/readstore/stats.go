package readstore

import (
	"context"
	"time"

	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/infra"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
	"referral-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsReadQueries interface {
	GetAssignmentVisitCounts(ctx context.Context, db sqlc.DBTX, assignmentID uuid.UUID) (sqlc.GetAssignmentVisitCountsRow, error)
	GetAssignmentPurchaseTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAssignmentPurchaseTotalsParams) (sqlc.GetAssignmentPurchaseTotalsRow, error)
	GetInfluencerTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInfluencerTotalsParams) (sqlc.GetInfluencerTotalsRow, error)
	GetInfluencerAssignmentStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInfluencerAssignmentStatsParams) ([]sqlc.GetInfluencerAssignmentStatsRow, error)
	GetMerchantInfluencerStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMerchantInfluencerStatsParams) ([]sqlc.GetMerchantInfluencerStatsRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) AssignmentVisitCounts(ctx context.Context, assignmentID uuid.UUID) (queries.VisitCounts, error) {
	row, err := r.queries.GetAssignmentVisitCounts(ctx, r.db, assignmentID)
	if err != nil {
		return queries.VisitCounts{}, infra.WrapRepoErr("failed to count assignment visits", err)
	}
	return queries.VisitCounts{TotalVisits: row.TotalVisits, TotalConversions: row.TotalConversions}, nil
}

func (r *StatsReadStore) AssignmentPurchaseTotals(ctx context.Context, referralCode string, monthStart time.Time) (queries.PurchaseTotals, error) {
	row, err := r.queries.GetAssignmentPurchaseTotals(ctx, r.db, sqlc.GetAssignmentPurchaseTotalsParams{
		CountedStatuses: purchase.CountedStatuses(),
		MonthStart:      pgconv.TimeToPgtype(monthStart),
		ReferralCode:    pgconv.StringToPgtype(referralCode),
	})
	if err != nil {
		return queries.PurchaseTotals{}, infra.WrapRepoErr("failed to sum assignment purchases", err)
	}
	return queries.PurchaseTotals{
		TotalRevenue:       row.TotalRevenue,
		TotalCommission:    row.TotalCommission,
		MonthlyConversions: row.MonthlyConversions,
	}, nil
}

// InfluencerTotals spans every assignment the influencer ever held, deleted ones included.
func (r *StatsReadStore) InfluencerTotals(ctx context.Context, influencerID uuid.UUID, monthStart time.Time) (queries.VisitCounts, queries.PurchaseTotals, error) {
	row, err := r.queries.GetInfluencerTotals(ctx, r.db, sqlc.GetInfluencerTotalsParams{
		InfluencerID:    influencerID,
		CountedStatuses: purchase.CountedStatuses(),
		MonthStart:      pgconv.TimeToPgtype(monthStart),
	})
	if err != nil {
		return queries.VisitCounts{}, queries.PurchaseTotals{}, infra.WrapRepoErr("failed to sum influencer totals", err)
	}
	counts := queries.VisitCounts{TotalVisits: row.TotalVisits, TotalConversions: row.TotalConversions}
	totals := queries.PurchaseTotals{
		TotalRevenue:       row.TotalRevenue,
		TotalCommission:    row.TotalCommission,
		MonthlyConversions: row.MonthlyConversions,
	}
	return counts, totals, nil
}

func (r *StatsReadStore) InfluencerAssignmentStats(ctx context.Context, influencerID uuid.UUID, monthStart time.Time) ([]*queries.AssignmentStatsRow, error) {
	rows, err := r.queries.GetInfluencerAssignmentStats(ctx, r.db, sqlc.GetInfluencerAssignmentStatsParams{
		InfluencerID:    influencerID,
		CountedStatuses: purchase.CountedStatuses(),
		MonthStart:      pgconv.TimeToPgtype(monthStart),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get influencer assignment stats", err)
	}

	out := make([]*queries.AssignmentStatsRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.AssignmentStatsRow{
			AssignmentID:   row.ID,
			PromotionID:    row.PromotionID,
			PromotionTitle: pgconv.StringFromPgtype(row.PromotionTitle),
			MerchantID:     row.MerchantID,
			ReferralCode:   row.ReferralCode,
			IsActive:       row.IsActive,
			VisitCounts: queries.VisitCounts{
				TotalVisits:      row.TotalVisits,
				TotalConversions: row.TotalConversions,
			},
			PurchaseTotals: queries.PurchaseTotals{
				TotalRevenue:       row.TotalRevenue,
				TotalCommission:    row.TotalCommission,
				MonthlyConversions: row.MonthlyConversions,
			},
		})
	}
	return out, nil
}

func (r *StatsReadStore) MerchantInfluencerStats(ctx context.Context, merchantID uuid.UUID, monthStart time.Time) ([]*queries.InfluencerStatsRow, error) {
	rows, err := r.queries.GetMerchantInfluencerStats(ctx, r.db, sqlc.GetMerchantInfluencerStatsParams{
		MerchantID:      merchantID,
		CountedStatuses: purchase.CountedStatuses(),
		MonthStart:      pgconv.TimeToPgtype(monthStart),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get merchant influencer stats", err)
	}

	out := make([]*queries.InfluencerStatsRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.InfluencerStatsRow{
			InfluencerID:      row.InfluencerID,
			ActiveAssignments: row.ActiveAssignments,
			TotalAssignments:  row.TotalAssignments,
			VisitCounts: queries.VisitCounts{
				TotalVisits:      row.TotalVisits,
				TotalConversions: row.TotalConversions,
			},
			PurchaseTotals: queries.PurchaseTotals{
				TotalRevenue:       row.TotalRevenue,
				TotalCommission:    row.TotalCommission,
				MonthlyConversions: row.MonthlyConversions,
			},
		})
	}
	return out, nil
}
