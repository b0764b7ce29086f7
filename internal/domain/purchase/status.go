package purchase

import "referral-engine/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.New("invalid purchase status")
	ErrInvalidTransition = errs.New("purchase status transition not allowed")
	ErrNotFound          = errs.New("purchase not found")
	ErrAlreadyExists     = errs.New("purchase already registered")
	ErrInvalidAmount     = errs.New("paid amount must be positive")
	ErrMissingID         = errs.New("promotion and merchant ids are required")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRedeemed Status = "redeemed"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRedeemed, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Counted reports whether revenue rollups include a purchase in this status.
func (s Status) Counted() bool {
	return s == StatusApproved || s == StatusRedeemed
}

// CountedStatuses lists the statuses summed into revenue.
func CountedStatuses() []string {
	return []string{StatusApproved.String(), StatusRedeemed.String()}
}

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusRedeemed},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
