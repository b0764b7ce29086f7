//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expect: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expect: true},
		{name: "wrapped serialization failure", err: fmt.Errorf("attribute: %w", &pgconn.PgError{Code: "40001"}), expect: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expect: false},
		{name: "plain error", err: errors.New("boom"), expect: false},
		{name: "nil", err: nil, expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry_StopsAtMax(t *testing.T) {
	err := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(err, 0, 3))
	assert.True(t, shouldRetry(err, 2, 3))
	assert.False(t, shouldRetry(err, 3, 3))
}

func TestCalculateBackoff_Bounds(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		floor := time.Duration(1<<attempt) * base
		ceiling := floor + floor/5

		got := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, ceiling)
	}
}
