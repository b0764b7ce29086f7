package api

import (
	"context"
	"net/http"

	reqdto "referral-engine/internal/handler/dto/request"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/handler/httperr"
	"referral-engine/internal/usecase/commands"
	"referral-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	cmds commands.AssignmentCommands
	q    queries.AssignmentQueries
}

func NewAssignmentHandler(cmds commands.AssignmentCommands, q queries.AssignmentQueries) *AssignmentHandler {
	return &AssignmentHandler{cmds: cmds, q: q}
}

// @Summary Assign influencer
// @Description Binds a partnered influencer to a promotion under a unique referral code
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssignRequest true "Assignment"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	merchantID, _, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.AssignRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(merchantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.Detail{Code: "INVALID_REQUEST"})
		return
	}
	a, err := h.cmds.Assign(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/assignments/"+a.ID().String())
	c.JSON(http.StatusCreated, resdto.FromAssignment(a))
}

// @Summary Deactivate assignment
// @Tags assignments
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 204 "No Content"
// @Router /api/assignments/{id}/deactivate [post]
func (h *AssignmentHandler) Deactivate(c *gin.Context) {
	h.change(c, h.cmds.Deactivate)
}

// @Summary Reactivate assignment
// @Tags assignments
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /api/assignments/{id}/reactivate [post]
func (h *AssignmentHandler) Reactivate(c *gin.Context) {
	h.change(c, h.cmds.Reactivate)
}

// @Summary Delete assignment
// @Tags assignments
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 204 "No Content"
// @Router /api/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	h.change(c, h.cmds.Delete)
}

func (h *AssignmentHandler) change(c *gin.Context, fn func(ctx context.Context, id, merchantID uuid.UUID) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	merchantID, _, ok := caller(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), id, merchantID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List assignments
// @Description Merchant sees assignments it created; influencer sees its own
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param promotion_id query string false "Promotion filter"
// @Success 200 {object} resdto.AssignmentListResponse
// @Router /api/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	partyID, role, ok := caller(c)
	if !ok {
		return
	}
	var promotionID *uuid.UUID
	if v := c.Query("promotion_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promotion_id", httperr.Detail{Code: "INVALID_ID"})
			return
		}
		promotionID = &id
	}
	items, err := h.q.List(c.Request.Context(), partyID, role, promotionID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignmentList(items))
}

// @Summary Get assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} resdto.AssignmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/assignments/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromAssignmentView(view))
}

// @Summary Check referral code availability
// @Description Validates a manual code and reports whether it is free. Nothing is reserved.
// @Tags referral-codes
// @Produce json
// @Security BearerAuth
// @Param code path string true "Referral code"
// @Success 200 {object} resdto.CodeAvailabilityResponse
// @Router /api/referral-codes/{code}/availability [get]
func (h *AssignmentHandler) CodeAvailability(c *gin.Context) {
	availability, err := h.q.CodeAvailability(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}
