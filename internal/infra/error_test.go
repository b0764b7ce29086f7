//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"referral-engine/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		kind           []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name:     "plain error becomes a db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:           "unique violation keeps its constraint",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintReferralCode},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintReferralCode,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:           "check violation",
			err:            &pgconn.PgError{Code: "23514", ConstraintName: "purchases_status_check"},
			wantKind:       infra.KindCheckViolated,
			wantConstraint: "purchases_status_check",
		},
		{
			name:     "explicit kind wins",
			err:      errors.New("no rows"),
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			assert.Equal(t, tc.wantConstraint, infra.ConstraintName(err))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestIsKind_ForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("boom"), infra.KindDBFailure))
	assert.Empty(t, infra.ConstraintName(errors.New("boom")))
}
