//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/handler/api"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/usecase/queries"
	"referral-engine/tests/common/httptest"
	queriesmock "referral-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStatsQueries
	partyID     uuid.UUID
}

func (s *StatsHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.partyID = uuid.New()

	h := api.NewStatsHandler(s.mockQueries)
	auth := fakeAuth(s.partyID)

	s.router.GET("/assignments/:id/stats", auth, h.AssignmentStats)
	s.router.GET("/influencers/me/overview", auth, h.InfluencerOverview)
	s.router.GET("/merchants/me/influencer-stats", auth, h.MerchantInfluencerStats)
}

func (s *StatsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func summerStats() queries.Stats {
	return queries.Stats{
		TotalVisits:        4,
		TotalConversions:   1,
		ConversionRate:     25,
		TotalRevenue:       decimal.RequireFromString("50"),
		TotalCommission:    decimal.RequireFromString("5"),
		MonthlyConversions: 1,
	}
}

func (s *StatsHandlerTestSuite) TestAssignmentStats() {
	id := uuid.New()

	s.Run("success: money rendered with two decimals", func() {
		s.mockQueries.EXPECT().AssignmentStats(gomock.Any(), id, s.partyID).Return(&queries.AssignmentStats{
			AssignmentID: id,
			ReferralCode: "SUMMER2025",
			Stats:        summerStats(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assignments/"+id.String()+"/stats", nil, "influencer")

		var body resdto.AssignmentStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SUMMER2025", body.ReferralCode)
		s.Equal(int64(4), body.TotalVisits)
		s.Equal(25.0, body.ConversionRate)
		s.Equal("50.00", body.TotalRevenue)
		s.Equal("5.00", body.TotalCommission)
	})

	s.Run("error: 404 for a stranger", func() {
		s.mockQueries.EXPECT().AssignmentStats(gomock.Any(), id, s.partyID).Return(nil, assignment.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assignments/"+id.String()+"/stats", nil, "merchant")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assignments/"+id.String()+"/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *StatsHandlerTestSuite) TestInfluencerOverview() {
	item := &queries.AssignmentStatsItem{
		AssignmentID: uuid.New(),
		PromotionID:  uuid.New(),
		MerchantID:   uuid.New(),
		ReferralCode: "SUMMER2025",
		IsActive:     true,
		Stats:        summerStats(),
	}
	s.mockQueries.EXPECT().InfluencerOverview(gomock.Any(), s.partyID).Return(&queries.InfluencerOverview{
		InfluencerID: s.partyID,
		Totals:       summerStats(),
		Assignments:  []*queries.AssignmentStatsItem{item},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/influencers/me/overview", nil, "influencer")

	var body resdto.InfluencerOverviewResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(s.partyID, body.InfluencerID)
	s.Equal("5.00", body.Totals.TotalCommission)
	s.Require().Len(body.Assignments, 1)
	s.Equal(item.AssignmentID, body.Assignments[0].AssignmentID)
	s.True(body.Assignments[0].IsActive)
}

func (s *StatsHandlerTestSuite) TestMerchantInfluencerStats() {
	influencerID := uuid.New()
	s.mockQueries.EXPECT().MerchantInfluencerStats(gomock.Any(), s.partyID).Return(&queries.MerchantInfluencerStats{
		MerchantID:        s.partyID,
		ActiveAssignments: 1,
		Totals:            summerStats(),
		Influencers: []*queries.InfluencerStatsItem{
			{InfluencerID: influencerID, ActiveAssignments: 1, TotalAssignments: 2, Stats: summerStats()},
		},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/merchants/me/influencer-stats", nil, "merchant")

	var body resdto.MerchantInfluencerStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(1), body.ActiveAssignments)
	s.Equal("50.00", body.Totals.TotalRevenue)
	s.Require().Len(body.Influencers, 1)
	s.Equal(influencerID, body.Influencers[0].InfluencerID)
	s.Equal(int64(2), body.Influencers[0].TotalAssignments)
}
