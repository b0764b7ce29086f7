package httperr

import (
	"net/http"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/pkg/errs"
	"referral-engine/internal/usecase/queries"
)

type Mapping struct {
	Status  int
	Code    string
	Message string
}

type entry struct {
	target error
	Mapping
}

var internal = Mapping{Status: http.StatusInternalServerError, Code: "INTERNAL", Message: "Internal error"}

// table is checked in order; the first sentinel err matches wins.
var table = []entry{
	// validation
	{partnership.ErrSelfPartnership, Mapping{http.StatusBadRequest, "SELF_PARTNERSHIP", "Merchant and influencer must differ"}},
	{partnership.ErrInvalidAction, Mapping{http.StatusBadRequest, "INVALID_ACTION", "Action must be approve or reject"}},
	{partnership.ErrInvalidStatus, Mapping{http.StatusBadRequest, "INVALID_STATUS", "Invalid partnership status"}},
	{partnership.ErrNoteTooLong, Mapping{http.StatusBadRequest, "NOTE_TOO_LONG", "Note is too long"}},
	{partnership.ErrMissingPartyID, Mapping{http.StatusBadRequest, "MISSING_PARTY_ID", "Merchant and influencer are required"}},
	{assignment.ErrInvalidCodeLength, Mapping{http.StatusBadRequest, string(assignment.ReasonInvalidLength), "Referral code must be between 8 and 17 characters"}},
	{assignment.ErrInvalidCodeFormat, Mapping{http.StatusBadRequest, string(assignment.ReasonInvalidFormat), "Referral code may only contain upper-case letters, digits, '-' and '_'"}},
	{assignment.ErrMissingID, Mapping{http.StatusBadRequest, "MISSING_ID", "Promotion and influencer are required"}},
	{assignment.ErrNegativePrice, Mapping{http.StatusBadRequest, "INVALID_PRICE", "Promotion price must not be negative"}},
	{assignment.ErrPromotionTitleTooBig, Mapping{http.StatusBadRequest, "TITLE_TOO_LONG", "Promotion title is too long"}},
	{commission.ErrInvalidRuleType, Mapping{http.StatusBadRequest, "INVALID_RULE_TYPE", "Rule type must be percentage or fixed"}},
	{commission.ErrNegativeValue, Mapping{http.StatusBadRequest, "INVALID_RULE_VALUE", "Rule value must not be negative"}},
	{commission.ErrPercentageTooBig, Mapping{http.StatusBadRequest, "INVALID_RULE_VALUE", "Percentage must not exceed 100"}},
	{purchase.ErrInvalidStatus, Mapping{http.StatusBadRequest, "INVALID_STATUS", "Invalid purchase status"}},
	{purchase.ErrInvalidAmount, Mapping{http.StatusBadRequest, "INVALID_AMOUNT", "Paid amount must be positive"}},
	{purchase.ErrMissingID, Mapping{http.StatusBadRequest, "MISSING_ID", "Promotion and merchant are required"}},
	{queries.ErrInvalidCursor, Mapping{http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor"}},

	// conflict
	{partnership.ErrAlreadyPending, Mapping{http.StatusConflict, "ALREADY_PENDING", "Partnership request is already pending"}},
	{partnership.ErrAlreadyApproved, Mapping{http.StatusConflict, "ALREADY_APPROVED", "Partnership is already approved"}},
	{assignment.ErrNoPartnership, Mapping{http.StatusConflict, "NO_PARTNERSHIP", "No approved partnership with this influencer"}},
	{assignment.ErrAlreadyAssigned, Mapping{http.StatusConflict, "ALREADY_ASSIGNED", "Influencer already has an active assignment for this promotion"}},
	{assignment.ErrCodeAlreadyExists, Mapping{http.StatusConflict, string(assignment.ReasonAlreadyExists), "Referral code is already taken"}},
	{assignment.ErrCodeGenerationExhausted, Mapping{http.StatusConflict, "CODE_GENERATION_EXHAUSTED", "Could not generate a unique referral code"}},
	{purchase.ErrAlreadyExists, Mapping{http.StatusConflict, "PURCHASE_ALREADY_EXISTS", "Purchase is already registered"}},
	{purchase.ErrInvalidTransition, Mapping{http.StatusConflict, "INVALID_TRANSITION", "Purchase status transition not allowed"}},

	// not found
	{partnership.ErrNotFound, Mapping{http.StatusNotFound, "NOT_FOUND", "Partnership not found"}},
	{assignment.ErrNotFound, Mapping{http.StatusNotFound, "NOT_FOUND", "Assignment not found"}},
	{purchase.ErrNotFound, Mapping{http.StatusNotFound, "NOT_FOUND", "Purchase not found"}},

	{queries.ErrAccessDenied, Mapping{http.StatusForbidden, "ACCESS_DENIED", "Access denied"}},
}

// Lookup returns the mapping for err, falling back to a 500.
func Lookup(err error) Mapping {
	for _, e := range table {
		if errs.Is(err, e.target) {
			return e.Mapping
		}
	}
	return internal
}
