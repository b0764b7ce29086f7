//go:build unit

package commands_test

import (
	"context"
	"testing"

	"referral-engine/internal/domain/purchase"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/usecase/commands"
	"referral-engine/tests/common/builder"
	"referral-engine/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseCommands_Register(t *testing.T) {
	ctx := context.Background()
	valid := commands.RegisterPurchaseInput{
		ID:          uuid.New(),
		PromotionID: uuid.New(),
		MerchantID:  uuid.New(),
		PaidAmount:  decimal.RequireFromString("50.00"),
	}

	testCases := []struct {
		name      string
		input     func() commands.RegisterPurchaseInput
		setupMock func(*uowtest.Fixture)
		expectErr error
	}{
		{
			name:  "success",
			input: func() commands.RegisterPurchaseInput { return valid },
			setupMock: func(f *uowtest.Fixture) {
				f.Purchases.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: non-positive amount",
			input: func() commands.RegisterPurchaseInput {
				in := valid
				in.PaidAmount = decimal.Zero
				return in
			},
			setupMock: func(*uowtest.Fixture) {},
			expectErr: purchase.ErrInvalidAmount,
		},
		{
			name:  "error: duplicate id",
			input: func() commands.RegisterPurchaseInput { return valid },
			setupMock: func(f *uowtest.Fixture) {
				f.Purchases.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create purchase", &pgconn.PgError{Code: "23505", ConstraintName: "purchases_pkey"}))
			},
			expectErr: purchase.ErrAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := uowtest.New(ctrl)
			tc.setupMock(f)
			uc := commands.NewPurchaseUseCase(f.UoW, clock.NewMockClock(fixedNow))

			p, err := uc.Register(ctx, tc.input())

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid.ID, p.ID())
			assert.Equal(t, purchase.StatusPending, p.Status())
			assert.False(t, p.Attributed())
		})
	}
}

func TestPurchaseCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		current   purchase.Status
		next      string
		setupMock func(*uowtest.Fixture, *purchase.Purchase)
		expectErr error
	}{
		{
			name:    "pending to approved",
			current: purchase.StatusPending,
			next:    "approved",
			setupMock: func(f *uowtest.Fixture, p *purchase.Purchase) {
				updated := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
					b.ID = p.ID()
					b.Status = purchase.StatusApproved
				}).BuildDomain()
				f.Reads.EXPECT().PurchaseByID(ctx, p.ID()).Return(p, nil)
				f.Purchases.EXPECT().UpdateStatus(ctx, gomock.Any(), p.ID(), purchase.StatusPending, purchase.StatusApproved).Return(updated, nil)
			},
		},
		{
			name:      "unknown status",
			current:   purchase.StatusPending,
			next:      "refunded",
			setupMock: func(*uowtest.Fixture, *purchase.Purchase) {},
			expectErr: purchase.ErrInvalidStatus,
		},
		{
			name:    "redeemed is terminal",
			current: purchase.StatusRedeemed,
			next:    "approved",
			setupMock: func(f *uowtest.Fixture, p *purchase.Purchase) {
				f.Reads.EXPECT().PurchaseByID(ctx, p.ID()).Return(p, nil)
			},
			expectErr: purchase.ErrInvalidTransition,
		},
		{
			name:    "not found",
			current: purchase.StatusPending,
			next:    "approved",
			setupMock: func(f *uowtest.Fixture, p *purchase.Purchase) {
				f.Reads.EXPECT().PurchaseByID(ctx, p.ID()).Return(nil, errNoRows)
			},
			expectErr: purchase.ErrNotFound,
		},
		{
			name:    "status changed concurrently",
			current: purchase.StatusPending,
			next:    "rejected",
			setupMock: func(f *uowtest.Fixture, p *purchase.Purchase) {
				f.Reads.EXPECT().PurchaseByID(ctx, p.ID()).Return(p, nil)
				f.Purchases.EXPECT().UpdateStatus(ctx, gomock.Any(), p.ID(), purchase.StatusPending, purchase.StatusRejected).Return(nil, errNoRows)
			},
			expectErr: purchase.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := uowtest.New(ctrl)
			p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) { b.Status = tc.current }).BuildDomain()
			tc.setupMock(f, p)
			uc := commands.NewPurchaseUseCase(f.UoW, clock.NewMockClock(fixedNow))

			updated, err := uc.UpdateStatus(ctx, p.ID(), tc.next)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, purchase.StatusApproved, updated.Status())
		})
	}
}
