//go:build unit

package assignment_test

import (
	"bytes"
	"errors"
	"testing"

	"referral-engine/internal/domain/assignment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestPrefix(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Summer Sale", want: "SUMMER"},
		{title: "Go", want: "GO"},
		{title: "Crème brûlée night", want: "CREMEB"},
		{title: "50% off!", want: "50OFF"},
		{title: "", want: "REF"},
		{title: "!!!", want: "REF"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, assignment.Prefix(tt.title))
		})
	}
}

func TestHash_IsDeterministic(t *testing.T) {
	influencerID, promotionID := uuid.New(), uuid.New()

	h1 := assignment.Hash(influencerID, promotionID)
	h2 := assignment.Hash(influencerID, promotionID)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 4)
	assert.NotEqual(t, h1, assignment.Hash(promotionID, influencerID), "argument order matters")
}

func TestGenerator_Generate(t *testing.T) {
	influencerID, promotionID := uuid.New(), uuid.New()

	t.Run("generated codes always pass validation", func(t *testing.T) {
		g := assignment.NewGenerator()
		for _, title := range []string{"", "Summer Sale", "A", "Very long promotion title indeed"} {
			code, err := g.Generate(influencerID, promotionID, title)
			require.NoError(t, err)

			parsed, err := assignment.ParseCode(code)
			require.NoError(t, err, "code %q", code)
			assert.Equal(t, code, parsed)
		}
	})

	t.Run("suffix disambiguates the same pair", func(t *testing.T) {
		src := bytes.NewReader([]byte{0x00, 0x00, 0xff, 0xff})
		g := assignment.NewGeneratorWithSource(src)

		first, err := g.Generate(influencerID, promotionID, "Summer Sale")
		require.NoError(t, err)
		second, err := g.Generate(influencerID, promotionID, "Summer Sale")
		require.NoError(t, err)

		base := "SUMMER" + assignment.Hash(influencerID, promotionID)
		assert.Equal(t, base+"AAA", first)
		assert.Equal(t, base+"777", second)
	})

	t.Run("entropy failure", func(t *testing.T) {
		g := assignment.NewGeneratorWithSource(failingReader{})
		_, err := g.Generate(influencerID, promotionID, "Summer Sale")
		assert.Error(t, err)
	})
}
