package api

import (
	"net/http"

	"referral-engine/internal/domain/partnership"
	reqdto "referral-engine/internal/handler/dto/request"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/handler/httperr"
	"referral-engine/internal/usecase/commands"
	"referral-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnershipHandler struct {
	cmds commands.PartnershipCommands
	q    queries.PartnershipQueries
}

func NewPartnershipHandler(cmds commands.PartnershipCommands, q queries.PartnershipQueries) *PartnershipHandler {
	return &PartnershipHandler{cmds: cmds, q: q}
}

// @Summary Request partnership
// @Description Merchant asks an influencer to partner. A rejected pair is reopened.
// @Tags partnerships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestPartnershipRequest true "Partnership request"
// @Success 201 {object} resdto.PartnershipResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/partnerships [post]
func (h *PartnershipHandler) Request(c *gin.Context) {
	merchantID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.RequestPartnershipRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.Request(c.Request.Context(), req.ToInput(merchantID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/partnerships/"+p.ID().String())
	c.JSON(http.StatusCreated, resdto.FromPartnership(p))
}

// @Summary Respond to partnership
// @Description Influencer approves or rejects a pending request
// @Tags partnerships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partnership ID"
// @Param request body reqdto.RespondPartnershipRequest true "Response"
// @Success 200 {object} resdto.PartnershipResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/partnerships/{id}/respond [post]
func (h *PartnershipHandler) Respond(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	influencerID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.RespondPartnershipRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.Respond(c.Request.Context(), req.ToInput(id, influencerID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartnership(p))
}

// @Summary Cancel partnership request
// @Description Deletes a pending request owned by the merchant. Always 204.
// @Tags partnerships
// @Security BearerAuth
// @Param id path string true "Partnership ID"
// @Success 204 "No Content"
// @Router /api/partnerships/{id} [delete]
func (h *PartnershipHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	merchantID, _, ok := caller(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, merchantID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List partnerships
// @Description Caller's partnerships, newest request first, with keyset pagination
// @Tags partnerships
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PartnershipListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/partnerships [get]
func (h *PartnershipHandler) List(c *gin.Context) {
	partyID, role, ok := caller(c)
	if !ok {
		return
	}
	var status *partnership.Status
	if v := c.Query("status"); v != "" {
		s, err := partnership.NewStatus(v)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		status = &s
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.List(c.Request.Context(), partyID, role, status, cursor, queryLimit(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartnershipList(items, next))
}

// @Summary Get partnership
// @Tags partnerships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partnership ID"
// @Success 200 {object} resdto.PartnershipResponse
// @Failure 404 {object} httperr.Response
// @Router /api/partnerships/{id} [get]
func (h *PartnershipHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	partyID, _, ok := caller(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, partyID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartnershipView(view))
}
