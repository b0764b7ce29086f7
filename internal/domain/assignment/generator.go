package assignment

import (
	"crypto/rand"
	"encoding/base32"
	"io"
	"strings"

	"referral-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/blake2b"
)

const (
	MaxGenerateAttempts = 5

	defaultPrefix = "REF"
	maxPrefixLen  = 6
	hashLen       = 4
	suffixLen     = 3
)

var ErrCodeGenerationExhausted = errs.New("could not generate a unique referral code")

var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generator builds referral codes shaped PREFIX+HASH+SUFFIX. PREFIX comes
// from the promotion title, HASH is stable per influencer and promotion, and
// SUFFIX is random so that a collision can be retried.
type Generator struct {
	random io.Reader
}

func NewGenerator() *Generator {
	return &Generator{random: rand.Reader}
}

// NewGeneratorWithSource is used by tests that need a predictable suffix.
func NewGeneratorWithSource(r io.Reader) *Generator {
	return &Generator{random: r}
}

func (g *Generator) Generate(influencerID, promotionID uuid.UUID, promotionTitle string) (string, error) {
	suffix, err := g.suffix()
	if err != nil {
		return "", errs.Wrap(err, "failed to read random suffix")
	}
	return Prefix(promotionTitle) + Hash(influencerID, promotionID) + suffix, nil
}

// Prefix takes up to six alphanumerics from the slugged promotion title.
func Prefix(title string) string {
	var b strings.Builder
	for _, r := range slug.Make(title) {
		if b.Len() == maxPrefixLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return defaultPrefix
	}
	return strings.ToUpper(b.String())
}

func Hash(influencerID, promotionID uuid.UUID) string {
	buf := make([]byte, 0, 32)
	buf = append(buf, influencerID[:]...)
	buf = append(buf, promotionID[:]...)
	sum := blake2b.Sum256(buf)
	return codeEncoding.EncodeToString(sum[:])[:hashLen]
}

func (g *Generator) suffix() (string, error) {
	var b [2]byte
	if _, err := io.ReadFull(g.random, b[:]); err != nil {
		return "", err
	}
	return codeEncoding.EncodeToString(b[:])[:suffixLen], nil
}
