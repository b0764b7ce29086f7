package attribution

import (
	"strings"
	"time"
)

// DefaultWindow is how long a tracked visit stays eligible for crediting.
const DefaultWindow = 7 * 24 * time.Hour

// Token is the client-held bridge between a visit and a later purchase.
type Token struct {
	Code     string
	IssuedAt time.Time
}

func NewToken(code string, issuedAt time.Time) Token {
	return Token{
		Code:     strings.ToUpper(strings.TrimSpace(code)),
		IssuedAt: issuedAt,
	}
}

func (t Token) Age(now time.Time) time.Duration {
	return now.Sub(t.IssuedAt)
}

// Expired reports whether the token is older than window. A token exactly
// window old is still valid.
func (t Token) Expired(now time.Time, window time.Duration) bool {
	return t.Age(now) > window
}
