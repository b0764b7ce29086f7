package partnership

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Action is the influencer's answer to a pending request.
type Action string

const (
	ActionApprove Action = "approved"
	ActionReject  Action = "rejected"
)

func NewAction(s string) (Action, error) {
	switch Action(s) {
	case ActionApprove, ActionReject:
		return Action(s), nil
	default:
		return "", ErrInvalidAction
	}
}

// Status returns the status a pending partnership moves to.
func (a Action) Status() Status {
	return Status(a)
}
