package api

import (
	"net/http"

	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/handler/httperr"
	"referral-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Assignment stats
// @Description Visits, conversions, revenue and commission for one assignment
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} resdto.AssignmentStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/assignments/{id}/stats [get]
func (h *StatsHandler) AssignmentStats(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	partyID, _, ok := caller(c)
	if !ok {
		return
	}
	stats, err := h.q.AssignmentStats(c.Request.Context(), id, partyID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignmentStats(stats))
}

// @Summary Influencer overview
// @Description Totals across the caller's assignments plus a per-assignment breakdown
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.InfluencerOverviewResponse
// @Router /api/influencers/me/overview [get]
func (h *StatsHandler) InfluencerOverview(c *gin.Context) {
	influencerID, _, ok := caller(c)
	if !ok {
		return
	}
	overview, err := h.q.InfluencerOverview(c.Request.Context(), influencerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInfluencerOverview(overview))
}

// @Summary Merchant influencer stats
// @Description Per-influencer breakdown across the caller's assignments
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MerchantInfluencerStatsResponse
// @Router /api/merchants/me/influencer-stats [get]
func (h *StatsHandler) MerchantInfluencerStats(c *gin.Context) {
	merchantID, _, ok := caller(c)
	if !ok {
		return
	}
	stats, err := h.q.MerchantInfluencerStats(c.Request.Context(), merchantID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMerchantInfluencerStats(stats))
}
