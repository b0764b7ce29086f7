//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"referral-engine/internal/handler/api"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/usecase/commands"
	"referral-engine/internal/usecase/shared"
	"referral-engine/tests/common/httptest"
	commandsmock "referral-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const cookieName = "ref_attr"

type TrackingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAttributionCommands
}

func (s *TrackingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAttributionCommands(s.mockCtrl)

	cfg := config.Config{Attribution: config.AttributionConfig{
		Window:         7 * 24 * time.Hour,
		TokenSecret:    "secret",
		CookieName:     cookieName,
		CookieSecure:   true,
		CookieSameSite: "Lax",
	}}
	h := api.NewTrackingHandler(s.mockCommands, cfg)

	s.router.POST("/track/visit", h.Visit)
	s.router.POST("/track/conversion", h.Conversion)
}

func (s *TrackingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrackingHandlerTestSuite))
}

// ================================================================================
// TestVisit
// ================================================================================

func (s *TrackingHandlerTestSuite) TestVisit() {
	promotionID := uuid.New()
	reqBody := map[string]any{"referral_code": "SUMMER2025", "promotion_id": promotionID.String()}

	s.Run("success: sets the attribution cookie", func() {
		s.mockCommands.EXPECT().RecordVisit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RecordVisitInput, carrier shared.TokenCarrier) bool {
				s.Equal("SUMMER2025", in.ReferralCode)
				s.Equal(promotionID, in.PromotionID)
				carrier.Write("signed-token", 7*24*time.Hour)
				return true
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/track/visit", reqBody, "")

		var body resdto.TrackVisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Tracked)

		ck := httptest.ExtractCookie(rec, cookieName)
		s.Require().NotNil(ck)
		s.Equal("signed-token", ck.Value)
		s.True(ck.HttpOnly)
		s.True(ck.Secure)
		s.Equal(604800, ck.MaxAge)
	})

	s.Run("unknown code: 200 with tracked=false and no cookie", func() {
		s.mockCommands.EXPECT().RecordVisit(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/track/visit", reqBody, "")

		var body resdto.TrackVisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Tracked)
		s.Nil(httptest.ExtractCookie(rec, cookieName))
	})

	s.Run("error: 400 without a referral code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/track/visit", map[string]any{"promotion_id": promotionID.String()}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

// ================================================================================
// TestConversion
// ================================================================================

func (s *TrackingHandlerTestSuite) TestConversion() {
	purchaseID := uuid.New()
	promotionID := uuid.New()
	reqBody := map[string]any{"purchase_id": purchaseID.String(), "promotion_id": promotionID.String()}

	s.Run("success: reads the cookie and clears it", func() {
		s.mockCommands.EXPECT().ResolveConversion(gomock.Any(), purchaseID, promotionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, carrier shared.TokenCarrier) bool {
				value, ok := carrier.Read()
				s.True(ok)
				s.Equal("signed-token", value)
				carrier.Clear()
				return true
			})

		cookies := []*http.Cookie{{Name: cookieName, Value: "signed-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/track/conversion", reqBody, cookies, "")

		var body resdto.TrackConversionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Attributed)

		ck := httptest.ExtractCookie(rec, cookieName)
		s.Require().NotNil(ck)
		s.Empty(ck.Value)
		s.Negative(ck.MaxAge)
	})

	s.Run("no cookie: 200 with attributed=false", func() {
		s.mockCommands.EXPECT().ResolveConversion(gomock.Any(), purchaseID, promotionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, carrier shared.TokenCarrier) bool {
				_, ok := carrier.Read()
				s.False(ok)
				return false
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/track/conversion", reqBody, "")

		var body resdto.TrackConversionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Attributed)
	})
}
