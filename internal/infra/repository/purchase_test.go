//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/infra"
	"referral-engine/internal/infra/repository"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/tests/common/builder"
	repositorymock "referral-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: purchase stored"},
		{
			name:       "error: duplicate purchase id",
			dbErr:      &pgconn.PgError{Code: "23505", ConstraintName: "purchases_pkey"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: negative amount rejected by check",
			dbErr:      &pgconn.PgError{Code: "23514", ConstraintName: "purchases_paid_amount_check"},
			expectKind: infra.KindCheckViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPurchaseRepository(mockQueries, mockDB)

			b := builder.NewPurchaseBuilder()
			mockQueries.EXPECT().CreatePurchase(ctx, mockDB, gomock.Any()).Return(b.BuildInfra(), tc.dbErr)

			err := repo.Create(ctx, mockDB, b.BuildDomain())

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

func TestPurchaseRepository_Attribute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		affected int64
		expectOK bool
	}{
		{name: "success: first attribution wins", affected: 1, expectOK: true},
		{name: "noop: already attributed", affected: 0, expectOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPurchaseRepository(mockQueries, mockDB)

			purchaseID, promotionID, influencerID := uuid.New(), uuid.New(), uuid.New()
			amount := decimal.RequireFromString("12.345")

			mockQueries.EXPECT().AttributePurchase(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AttributePurchaseParams) (int64, error) {
					assert.Equal(t, "SUMMER2025", arg.ReferralCode.String)
					assert.True(t, arg.CommissionAmount.Decimal.Equal(amount), "amount is stored unrounded")
					assert.Equal(t, purchaseID, arg.ID)
					assert.Equal(t, promotionID, arg.PromotionID)
					return tc.affected, nil
				})

			ok, err := repo.Attribute(ctx, mockDB, purchaseID, promotionID, "SUMMER2025", influencerID, amount, now)

			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
		})
	}
}

func TestPurchaseRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: status moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPurchaseRepository(mockQueries, mockDB)

		b := builder.NewPurchaseBuilder().With(func(p *builder.PurchaseBuilder) { p.Status = purchase.StatusApproved })
		mockQueries.EXPECT().UpdatePurchaseStatus(ctx, mockDB, sqlc.UpdatePurchaseStatusParams{
			ToStatus:   "approved",
			ID:         b.ID,
			FromStatus: "pending",
		}).Return(b.BuildInfra(), nil)

		p, err := repo.UpdateStatus(ctx, mockDB, b.ID, purchase.StatusPending, purchase.StatusApproved)

		require.NoError(t, err)
		assert.Equal(t, purchase.StatusApproved, p.Status())
	})

	t.Run("error: status changed underneath", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPurchaseRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdatePurchaseStatus(ctx, mockDB, gomock.Any()).Return(sqlc.Purchases{}, pgx.ErrNoRows)

		_, err := repo.UpdateStatus(ctx, mockDB, uuid.New(), purchase.StatusPending, purchase.StatusApproved)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
