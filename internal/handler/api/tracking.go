package api

import (
	"net/http"

	reqdto "referral-engine/internal/handler/dto/request"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/cookie"
	"referral-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves anonymous visitors. Tracking problems never surface
// as errors; the response only says whether anything was recorded.
type TrackingHandler struct {
	cmds commands.AttributionCommands
	cfg  config.AttributionConfig
}

func NewTrackingHandler(cmds commands.AttributionCommands, cfg config.Config) *TrackingHandler {
	return &TrackingHandler{cmds: cmds, cfg: cfg.Attribution}
}

// @Summary Track referral visit
// @Description Records a visit through a referral link and sets the attribution cookie
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body reqdto.TrackVisitRequest true "Visit"
// @Success 200 {object} resdto.TrackVisitResponse
// @Failure 400 {object} httperr.Response
// @Router /api/track/visit [post]
func (h *TrackingHandler) Visit(c *gin.Context) {
	var req reqdto.TrackVisitRequest
	if !bindJSON(c, &req) {
		return
	}
	tracked := h.cmds.RecordVisit(c.Request.Context(), commands.RecordVisitInput{
		ReferralCode: req.ReferralCode,
		PromotionID:  req.PromotionID,
		UserAgent:    c.Request.UserAgent(),
		Referrer:     c.Request.Referer(),
	}, cookie.NewCarrier(c, h.cfg))
	c.JSON(http.StatusOK, resdto.TrackVisitResponse{Tracked: tracked})
}

// @Summary Resolve conversion
// @Description Credits a completed purchase to the referral in the attribution cookie, if any
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body reqdto.TrackConversionRequest true "Conversion"
// @Success 200 {object} resdto.TrackConversionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/track/conversion [post]
func (h *TrackingHandler) Conversion(c *gin.Context) {
	var req reqdto.TrackConversionRequest
	if !bindJSON(c, &req) {
		return
	}
	attributed := h.cmds.ResolveConversion(c.Request.Context(), req.PurchaseID, req.PromotionID, cookie.NewCarrier(c, h.cfg))
	c.JSON(http.StatusOK, resdto.TrackConversionResponse{Attributed: attributed})
}
