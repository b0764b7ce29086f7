package api

import (
	"errors"
	"net/http"
	"strconv"

	"referral-engine/internal/domain/party"
	"referral-engine/internal/handler/httperr"
	"referral-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("caller missing from context")

// caller reads the party set by the auth middleware and aborts when it is absent.
func caller(c *gin.Context) (uuid.UUID, party.Role, bool) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", httperr.Detail{Code: "UNAUTHORIZED"})
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetRole(c)
	return partyID, role, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", httperr.Detail{Code: "INVALID_ID"})
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.Detail{Code: "INVALID_REQUEST"})
		return false
	}
	return true
}

func queryLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			return iv
		}
	}
	return 0
}
