package partnership

import (
	"strings"
	"time"
	"unicode/utf8"

	"referral-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNoteLength = 1000

var (
	ErrInvalidStatus   = errs.New("invalid partnership status")
	ErrInvalidAction   = errs.New("invalid partnership action")
	ErrSelfPartnership = errs.New("merchant and influencer must differ")
	ErrNoteTooLong     = errs.New("partnership note exceeds maximum length")
	ErrAlreadyPending  = errs.New("partnership request is already pending")
	ErrAlreadyApproved = errs.New("partnership is already approved")
	ErrNotFound        = errs.New("partnership not found")
	ErrMissingPartyID  = errs.New("party id is required")
)

// Partnership is the single row kept per merchant and influencer pair.
// A rejected partnership may be requested again, which reopens the same row.
type Partnership struct {
	id           uuid.UUID
	merchantID   uuid.UUID
	influencerID uuid.UUID
	status       Status
	message      string
	notes        string
	requestedAt  time.Time
	respondedAt  *time.Time
}

// NewRequest builds a pending request from a merchant to an influencer.
func NewRequest(merchantID, influencerID uuid.UUID, message string, now time.Time) (*Partnership, error) {
	if merchantID == uuid.Nil || influencerID == uuid.Nil {
		return nil, ErrMissingPartyID
	}
	if merchantID == influencerID {
		return nil, ErrSelfPartnership
	}
	msg, err := normalizeNote(message)
	if err != nil {
		return nil, err
	}

	return &Partnership{
		id:           uuid.New(),
		merchantID:   merchantID,
		influencerID: influencerID,
		status:       StatusPending,
		message:      msg,
		requestedAt:  now,
	}, nil
}

func Reconstruct(id, merchantID, influencerID uuid.UUID, status Status, message, notes string, requestedAt time.Time, respondedAt *time.Time) *Partnership {
	return &Partnership{
		id:           id,
		merchantID:   merchantID,
		influencerID: influencerID,
		status:       status,
		message:      message,
		notes:        notes,
		requestedAt:  requestedAt,
		respondedAt:  respondedAt,
	}
}

// NewResponseNotes validates the influencer's optional notes.
func NewResponseNotes(notes string) (string, error) {
	return normalizeNote(notes)
}

// ConflictFor maps the status of an existing row to the error a new request
// over the same pair must fail with. Rejected rows can be requested again.
func ConflictFor(existing Status) error {
	switch existing {
	case StatusPending:
		return ErrAlreadyPending
	case StatusApproved:
		return ErrAlreadyApproved
	default:
		return nil
	}
}

func (p *Partnership) ID() uuid.UUID           { return p.id }
func (p *Partnership) MerchantID() uuid.UUID   { return p.merchantID }
func (p *Partnership) InfluencerID() uuid.UUID { return p.influencerID }
func (p *Partnership) Status() Status          { return p.status }
func (p *Partnership) Message() string         { return p.message }
func (p *Partnership) Notes() string           { return p.notes }
func (p *Partnership) RequestedAt() time.Time  { return p.requestedAt }
func (p *Partnership) RespondedAt() *time.Time { return p.respondedAt }
func (p *Partnership) IsApproved() bool        { return p.status == StatusApproved }

func normalizeNote(s string) (string, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxNoteLength {
		return "", ErrNoteTooLong
	}
	return t, nil
}
