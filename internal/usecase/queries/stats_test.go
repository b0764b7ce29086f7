//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/usecase/queries"
	"referral-engine/internal/usecase/shared"
	queriesmock "referral-engine/tests/mock/queries"
	sharedmock "referral-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var statsNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type statsDeps struct {
	stats       *queriesmock.MockStatsReadStore
	assignments *queriesmock.MockAssignmentReadStore
	cache       *sharedmock.MockCounterCache
	q           queries.StatsQueries
}

func newStatsDeps(t *testing.T, ctrl *gomock.Controller, tz string) *statsDeps {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Stats.BusinessTimeZone = tz

	d := &statsDeps{
		stats:       queriesmock.NewMockStatsReadStore(ctrl),
		assignments: queriesmock.NewMockAssignmentReadStore(ctrl),
		cache:       sharedmock.NewMockCounterCache(ctrl),
	}
	q, err := queries.NewStatsQueries(d.stats, d.assignments, d.cache, clock.NewMockClock(statsNow), cfg)
	require.NoError(t, err)
	d.q = q
	return d
}

func totals(revenue, commission string, monthly int64) queries.PurchaseTotals {
	return queries.PurchaseTotals{
		TotalRevenue:       decimal.RequireFromString(revenue),
		TotalCommission:    decimal.RequireFromString(commission),
		MonthlyConversions: monthly,
	}
}

// =============================================================================
// AssignmentStats Tests
// =============================================================================

func TestStatsQueries_AssignmentStats(t *testing.T) {
	ctx := context.Background()
	view := &queries.AssignmentView{ID: uuid.New(), MerchantID: uuid.New(), InfluencerID: uuid.New(), ReferralCode: "SUMMER2025"}
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("cache hit skips the visit query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newStatsDeps(t, ctrl, "UTC")

		d.assignments.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		d.cache.EXPECT().Get(ctx, view.ID).Return(shared.Counters{Visits: 4, Conversions: 1}, int64(0), true)
		d.stats.EXPECT().AssignmentPurchaseTotals(ctx, "SUMMER2025", monthStart).Return(totals("50.00", "5.00", 1), nil)

		got, err := d.q.AssignmentStats(ctx, view.ID, view.MerchantID)

		require.NoError(t, err)
		assert.Equal(t, int64(4), got.TotalVisits)
		assert.Equal(t, int64(1), got.TotalConversions)
		assert.InDelta(t, 0.25, got.ConversionRate, 1e-9)
		assert.True(t, got.TotalCommission.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, int64(1), got.MonthlyConversions)
	})

	t.Run("cache miss seeds under the epoch it read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newStatsDeps(t, ctrl, "UTC")

		d.assignments.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		d.cache.EXPECT().Get(ctx, view.ID).Return(shared.Counters{}, int64(3), false)
		d.stats.EXPECT().AssignmentVisitCounts(ctx, view.ID).Return(queries.VisitCounts{TotalVisits: 0, TotalConversions: 0}, nil)
		d.cache.EXPECT().Seed(ctx, view.ID, int64(3), shared.Counters{})
		d.stats.EXPECT().AssignmentPurchaseTotals(ctx, "SUMMER2025", monthStart).Return(totals("0", "0", 0), nil)

		got, err := d.q.AssignmentStats(ctx, view.ID, view.InfluencerID)

		require.NoError(t, err)
		assert.Zero(t, got.ConversionRate)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newStatsDeps(t, ctrl, "UTC")

		d.assignments.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := d.q.AssignmentStats(ctx, view.ID, uuid.New())

		assert.ErrorIs(t, err, assignment.ErrNotFound)
	})
}

func TestStatsQueries_MonthStartFollowsBusinessTimeZone(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newStatsDeps(t, ctrl, "Asia/Tokyo")

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	influencerID := uuid.New()
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, tokyo)

	d.stats.EXPECT().InfluencerTotals(ctx, influencerID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, monthStart time.Time) (queries.VisitCounts, queries.PurchaseTotals, error) {
			assert.True(t, monthStart.Equal(want), "month start = %s", monthStart)
			return queries.VisitCounts{}, totals("0", "0", 0), nil
		})
	d.stats.EXPECT().InfluencerAssignmentStats(ctx, influencerID, gomock.Any()).Return(nil, nil)

	got, err := d.q.InfluencerOverview(ctx, influencerID)

	require.NoError(t, err)
	assert.Empty(t, got.Assignments)
}

// =============================================================================
// Rollup Tests
// =============================================================================

func TestStatsQueries_InfluencerOverview(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newStatsDeps(t, ctrl, "UTC")
	influencerID := uuid.New()

	d.stats.EXPECT().InfluencerTotals(ctx, influencerID, gomock.Any()).
		Return(queries.VisitCounts{TotalVisits: 8, TotalConversions: 2}, totals("149.985", "14.9985", 2), nil)
	d.stats.EXPECT().InfluencerAssignmentStats(ctx, influencerID, gomock.Any()).Return([]*queries.AssignmentStatsRow{
		{
			AssignmentID:   uuid.New(),
			ReferralCode:   "SUMMER2025",
			IsActive:       true,
			VisitCounts:    queries.VisitCounts{TotalVisits: 8, TotalConversions: 2},
			PurchaseTotals: totals("149.985", "14.9985", 2),
		},
	}, nil)

	got, err := d.q.InfluencerOverview(ctx, influencerID)

	require.NoError(t, err)
	assert.Equal(t, "149.99", got.Totals.TotalRevenue.StringFixed(2))
	assert.Equal(t, "15.00", got.Totals.TotalCommission.StringFixed(2))
	require.Len(t, got.Assignments, 1)
	assert.InDelta(t, 0.25, got.Assignments[0].ConversionRate, 1e-9)
}

func TestStatsQueries_MerchantInfluencerStats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newStatsDeps(t, ctrl, "UTC")
	merchantID := uuid.New()

	d.stats.EXPECT().MerchantInfluencerStats(ctx, merchantID, gomock.Any()).Return([]*queries.InfluencerStatsRow{
		{
			InfluencerID:      uuid.New(),
			ActiveAssignments: 1,
			TotalAssignments:  2,
			VisitCounts:       queries.VisitCounts{TotalVisits: 10, TotalConversions: 1},
			PurchaseTotals:    totals("50", "5", 1),
		},
		{
			InfluencerID:      uuid.New(),
			ActiveAssignments: 2,
			TotalAssignments:  2,
			VisitCounts:       queries.VisitCounts{TotalVisits: 10, TotalConversions: 3},
			PurchaseTotals:    totals("120.50", "12.05", 0),
		},
	}, nil)

	got, err := d.q.MerchantInfluencerStats(ctx, merchantID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ActiveAssignments)
	assert.Equal(t, int64(20), got.Totals.TotalVisits)
	assert.InDelta(t, 0.2, got.Totals.ConversionRate, 1e-9)
	assert.Equal(t, "170.50", got.Totals.TotalRevenue.StringFixed(2))
	assert.Equal(t, "17.05", got.Totals.TotalCommission.StringFixed(2))
	assert.Equal(t, int64(1), got.Totals.MonthlyConversions)
	assert.Len(t, got.Influencers, 2)
}

func TestConversionRate(t *testing.T) {
	assert.Zero(t, queries.ConversionRate(0, 0))
	assert.Zero(t, queries.ConversionRate(3, 0))
	assert.InDelta(t, 0.5, queries.ConversionRate(1, 2), 1e-9)
}
