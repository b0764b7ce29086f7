//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/handler/api"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/usecase/commands"
	"referral-engine/tests/common/builder"
	"referral-engine/tests/common/httptest"
	"referral-engine/tests/common/testutil"
	commandsmock "referral-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)

	h := api.NewPurchaseHandler(s.mockCommands)
	auth := fakeAuth(uuid.New())

	s.router.POST("/purchases", auth, h.Register)
	s.router.PATCH("/purchases/:id/status", auth, h.UpdateStatus)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestRegister() {
	purchaseID := uuid.New()
	promotionID := uuid.New()
	merchantID := uuid.New()
	reqBody := map[string]any{
		"id":           purchaseID.String(),
		"promotion_id": promotionID.String(),
		"merchant_id":  merchantID.String(),
		"paid_amount":  "50.00",
	}

	s.Run("success: 201", func() {
		p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
			b.ID = purchaseID
			b.PromotionID = promotionID
			b.MerchantID = merchantID
			b.PaidAmount = decimal.RequireFromString("50.00")
		}).BuildDomain()
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RegisterPurchaseInput) (*purchase.Purchase, error) {
				s.Equal(purchaseID, in.ID)
				s.Equal(promotionID, in.PromotionID)
				s.Equal(merchantID, in.MerchantID)
				s.Nil(in.ConsumerID)
				s.True(in.PaidAmount.Equal(decimal.NewFromInt(50)))
				return p, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/purchases", reqBody, "service")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(purchaseID, body.ID)
		s.Equal("pending", body.Status)
		s.Nil(body.ReferralCode)
	})

	s.Run("error: 400 without merchant_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/purchases", testutil.DtoMap(s.T(), reqBody, testutil.Field("merchant_id", nil)), "service")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{name: "non-positive amount", err: purchase.ErrInvalidAmount, wantStatus: http.StatusBadRequest, wantCode: "INVALID_AMOUNT"},
			{name: "duplicate", err: purchase.ErrAlreadyExists, wantStatus: http.StatusConflict, wantCode: "PURCHASE_ALREADY_EXISTS"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/purchases", reqBody, "service")
				httptest.AssertErrorCode(s.T(), rec, tc.wantStatus, tc.wantCode)
			})
		}
	})
}

func (s *PurchaseHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/purchases/" + id.String() + "/status"

	s.Run("success: approved", func() {
		p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
			b.ID = id
			b.Status = purchase.StatusApproved
		}).BuildDomain()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "approved").Return(p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, "service")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "shipped"}, "service")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: 409 leaving a terminal state", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "pending").Return(nil, purchase.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, "service")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INVALID_TRANSITION")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "redeemed").Return(nil, purchase.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "redeemed"}, "service")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
