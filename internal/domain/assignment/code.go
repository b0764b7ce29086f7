package assignment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"referral-engine/internal/pkg/errs"
)

const (
	MinCodeLength = 8
	MaxCodeLength = 17
)

var (
	ErrInvalidCodeLength = errs.New("referral code must be between 8 and 17 characters")
	ErrInvalidCodeFormat = errs.New("referral code may only contain upper-case letters, digits, '-' and '_'")
	ErrCodeAlreadyExists = errs.New("referral code is already taken")
)

// rawCodePattern is checked on the input as typed. Lowercase letters and spaces
// fail here; case folding only applies to visitor lookups.
var rawCodePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// ParseCode validates a merchant supplied code. Length is checked before the
// character class, and both run before any uniqueness lookup.
func ParseCode(raw string) (string, error) {
	n := utf8.RuneCountInString(raw)
	if n < MinCodeLength || n > MaxCodeLength {
		return "", ErrInvalidCodeLength
	}
	if !rawCodePattern.MatchString(raw) {
		return "", ErrInvalidCodeFormat
	}
	return raw, nil
}

// NormalizeLookup prepares a code from a visitor link for a case-insensitive lookup.
func NormalizeLookup(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Reason is the stable machine code explaining why a code cannot be used.
type Reason string

const (
	ReasonInvalidLength Reason = "INVALID_CODE_LENGTH"
	ReasonInvalidFormat Reason = "INVALID_CODE_FORMAT"
	ReasonAlreadyExists Reason = "CODE_ALREADY_EXISTS"
)

// Availability is the answer to a pre-validation request from the UI.
type Availability struct {
	Code      string
	Available bool
	Reason    Reason
}

func Available(code string) Availability {
	return Availability{Code: code, Available: true}
}

func Unavailable(code string, err error) Availability {
	return Availability{Code: code, Available: false, Reason: ReasonFor(err)}
}

func ReasonFor(err error) Reason {
	switch {
	case errs.Is(err, ErrInvalidCodeLength):
		return ReasonInvalidLength
	case errs.Is(err, ErrInvalidCodeFormat):
		return ReasonInvalidFormat
	case errs.Is(err, ErrCodeAlreadyExists):
		return ReasonAlreadyExists
	default:
		return ""
	}
}
