//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/party"
	"referral-engine/internal/handler/api"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/usecase/commands"
	"referral-engine/internal/usecase/queries"
	"referral-engine/tests/common/builder"
	"referral-engine/tests/common/httptest"
	"referral-engine/tests/common/testutil"
	commandsmock "referral-engine/tests/mock/commands"
	queriesmock "referral-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAssignmentCommands
	mockQueries  *queriesmock.MockAssignmentQueries
	partyID      uuid.UUID
}

func (s *AssignmentHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAssignmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAssignmentQueries(s.mockCtrl)
	s.partyID = uuid.New()

	h := api.NewAssignmentHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.partyID)

	s.router.POST("/assignments", auth, h.Assign)
	s.router.GET("/assignments", auth, h.List)
	s.router.GET("/assignments/:id", auth, h.Get)
	s.router.POST("/assignments/:id/deactivate", auth, h.Deactivate)
	s.router.POST("/assignments/:id/reactivate", auth, h.Reactivate)
	s.router.DELETE("/assignments/:id", auth, h.Delete)
	s.router.GET("/referral-codes/:code/availability", auth, h.CodeAvailability)
}

func (s *AssignmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssignmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}

// ================================================================================
// TestAssign
// ================================================================================

func (s *AssignmentHandlerTestSuite) TestAssign() {
	url := "/assignments"
	influencerID := uuid.New()
	promotionID := uuid.New()
	reqBody := map[string]any{
		"influencer_id":   influencerID.String(),
		"promotion_id":    promotionID.String(),
		"promotion_title": "Summer Sale",
		"promotion_price": "49.90",
		"referral_code":   "summer2025",
		"commission":      map[string]any{"type": "percentage", "value": "10"},
	}

	s.Run("success: 201 with the new assignment", func() {
		a := builder.NewAssignmentBuilder().With(func(b *builder.AssignmentBuilder) {
			b.MerchantID = s.partyID
			b.InfluencerID = influencerID
			b.PromotionID = promotionID
		}).BuildDomain()
		s.mockCommands.EXPECT().Assign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.AssignInput) (*assignment.Assignment, error) {
				s.Equal(s.partyID, in.MerchantID)
				s.Equal(influencerID, in.InfluencerID)
				s.Equal(promotionID, in.PromotionID)
				s.Equal("summer2025", in.ReferralCode)
				s.Require().NotNil(in.PromotionPrice)
				s.True(in.PromotionPrice.Equal(decimal.RequireFromString("49.90")))
				s.Require().NotNil(in.Commission)
				s.Equal("percentage", in.Commission.Type)
				s.True(in.Commission.Value.Equal(decimal.NewFromInt(10)))
				s.Nil(in.ExtraDiscount)
				return a, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "merchant")

		var body resdto.AssignmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("SUMMER2025", body.ReferralCode)
		s.True(body.IsActive)
		s.Require().NotNil(body.CommissionRule)
		s.Equal("percentage", body.CommissionRule.Type)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing promotion_id", mutate: testutil.Field("promotion_id", nil)},
			{name: "missing influencer_id", mutate: testutil.Field("influencer_id", nil)},
			{name: "unknown rule type", mutate: testutil.Field("commission", map[string]any{"type": "tiered", "value": "1"})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "merchant")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{name: "no partnership", err: assignment.ErrNoPartnership, wantStatus: http.StatusConflict, wantCode: "NO_PARTNERSHIP"},
			{name: "already assigned", err: assignment.ErrAlreadyAssigned, wantStatus: http.StatusConflict, wantCode: "ALREADY_ASSIGNED"},
			{name: "code taken", err: assignment.ErrCodeAlreadyExists, wantStatus: http.StatusConflict, wantCode: "CODE_ALREADY_EXISTS"},
			{name: "code length", err: assignment.ErrInvalidCodeLength, wantStatus: http.StatusBadRequest, wantCode: "INVALID_CODE_LENGTH"},
			{name: "code format", err: assignment.ErrInvalidCodeFormat, wantStatus: http.StatusBadRequest, wantCode: "INVALID_CODE_FORMAT"},
			{name: "exhausted", err: assignment.ErrCodeGenerationExhausted, wantStatus: http.StatusConflict, wantCode: "CODE_GENERATION_EXHAUSTED"},
			{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "merchant")
				httptest.AssertErrorCode(s.T(), rec, tc.wantStatus, tc.wantCode)
			})
		}
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *AssignmentHandlerTestSuite) TestLifecycle() {
	id := uuid.New()

	s.Run("deactivate: 204", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), id, s.partyID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/assignments/"+id.String()+"/deactivate", nil, "merchant")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("reactivate: 409 when another active assignment exists", func() {
		s.mockCommands.EXPECT().Reactivate(gomock.Any(), id, s.partyID).Return(assignment.ErrAlreadyAssigned)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/assignments/"+id.String()+"/reactivate", nil, "merchant")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "ALREADY_ASSIGNED")
	})

	s.Run("delete: 404 for a foreign assignment", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.partyID).Return(assignment.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/assignments/"+id.String(), nil, "merchant")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *AssignmentHandlerTestSuite) TestList() {
	promotionID := uuid.New()
	view := &queries.AssignmentView{
		ID:           uuid.New(),
		PromotionID:  promotionID,
		InfluencerID: s.partyID,
		ReferralCode: "SUMMER2025",
		Commission:   &queries.RuleView{Type: "fixed", Value: decimal.RequireFromString("2.50")},
		IsActive:     true,
	}

	s.Run("success: filtered by promotion", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.partyID, party.RoleInfluencer, &promotionID).
			Return([]*queries.AssignmentView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assignments?promotion_id="+promotionID.String(), nil, "influencer")

		var body resdto.AssignmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Assignments, 1)
		s.Equal("SUMMER2025", body.Assignments[0].ReferralCode)
		s.Require().NotNil(body.Assignments[0].CommissionRule)
		s.Equal("fixed", body.Assignments[0].CommissionRule.Type)
	})

	s.Run("error: 400 on malformed promotion_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assignments?promotion_id=abc", nil, "merchant")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_ID")
	})
}

// ================================================================================
// TestCodeAvailability
// ================================================================================

func (s *AssignmentHandlerTestSuite) TestCodeAvailability() {
	s.Run("available", func() {
		s.mockQueries.EXPECT().CodeAvailability(gomock.Any(), "summer2025").Return(assignment.Available("SUMMER2025"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/referral-codes/summer2025/availability", nil, "merchant")

		var body resdto.CodeAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Empty(body.Reason)
	})

	s.Run("taken", func() {
		s.mockQueries.EXPECT().CodeAvailability(gomock.Any(), "SUMMER2025").
			Return(assignment.Unavailable("SUMMER2025", assignment.ErrCodeAlreadyExists), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/referral-codes/SUMMER2025/availability", nil, "merchant")

		var body resdto.CodeAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal("CODE_ALREADY_EXISTS", body.Reason)
	})
}
