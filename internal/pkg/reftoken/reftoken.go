package reftoken

import (
	"errors"
	"strings"
	"time"

	"referral-engine/internal/domain/attribution"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid attribution token")

type claims struct {
	Code string `json:"code"`
	jwt.RegisteredClaims
}

// Codec signs attribution tokens so that a visitor cannot forge or alter the
// referral code or the issue time. Age is checked by the caller against its
// own clock, so registered claims are not validated here.
type Codec struct {
	secretKey []byte
	parser    *jwt.Parser
}

func NewCodec(secretKey string) *Codec {
	return &Codec{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

func (c *Codec) Encode(t attribution.Token) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Code: t.Code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(t.IssuedAt),
		},
	})
	return token.SignedString(c.secretKey)
}

func (c *Codec) Decode(value string) (attribution.Token, error) {
	if strings.TrimSpace(value) == "" {
		return attribution.Token{}, ErrInvalidToken
	}

	var cl claims
	token, err := c.parser.ParseWithClaims(value, &cl, func(*jwt.Token) (any, error) {
		return c.secretKey, nil
	})
	if err != nil || !token.Valid {
		return attribution.Token{}, ErrInvalidToken
	}
	if cl.Code == "" || cl.IssuedAt == nil {
		return attribution.Token{}, ErrInvalidToken
	}

	return attribution.NewToken(cl.Code, cl.IssuedAt.Time), nil
}

// IssuedAtPrecision is the resolution of the issue time once encoded.
const IssuedAtPrecision = time.Second
