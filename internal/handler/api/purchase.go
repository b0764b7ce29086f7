package api

import (
	"net/http"

	reqdto "referral-engine/internal/handler/dto/request"
	resdto "referral-engine/internal/handler/dto/response"
	"referral-engine/internal/handler/httperr"
	"referral-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler is called by the checkout service, not by end users.
type PurchaseHandler struct {
	cmds commands.PurchaseCommands
}

func NewPurchaseHandler(cmds commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds}
}

// @Summary Register purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterPurchaseRequest true "Purchase"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/purchases [post]
func (h *PurchaseHandler) Register(c *gin.Context) {
	var req reqdto.RegisterPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.Detail{Code: "INVALID_REQUEST"})
		return
	}
	p, err := h.cmds.Register(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPurchase(p))
}

// @Summary Update purchase status
// @Description pending to approved or rejected, approved to redeemed
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Param request body reqdto.UpdatePurchaseStatusRequest true "Status"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/purchases/{id}/status [patch]
func (h *PurchaseHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePurchaseStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPurchase(p))
}
