//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"referral-engine/internal/domain/commission"
	"referral-engine/internal/infra"
	"referral-engine/internal/infra/readstore"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/tests/common/builder"
	readstoremock "referral-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindActiveByCode Tests
// =============================================================================

func TestAssignmentReadStore_FindActiveByCode(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockAssignmentReadQueries, *builder.AssignmentBuilder)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: maps rules and promotion",
			setupMock: func(mock *readstoremock.MockAssignmentReadQueries, b *builder.AssignmentBuilder) {
				b.ExtraDiscount = &commission.Rule{Type: commission.RuleTypeFixed, Value: decimal.NewFromInt(5)}
				mock.EXPECT().GetActiveAssignmentByCode(ctx, gomock.Any(), "SUMMER2025").Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: unknown code",
			setupMock: func(mock *readstoremock.MockAssignmentReadQueries, b *builder.AssignmentBuilder) {
				mock.EXPECT().GetActiveAssignmentByCode(ctx, gomock.Any(), "SUMMER2025").Return(sqlc.Assignments{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *readstoremock.MockAssignmentReadQueries, b *builder.AssignmentBuilder) {
				mock.EXPECT().GetActiveAssignmentByCode(ctx, gomock.Any(), "SUMMER2025").Return(sqlc.Assignments{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAssignmentReadQueries(ctrl)
			store := readstore.NewAssignmentReadStore(mockQueries, &mockDBTX{})
			b := builder.NewAssignmentBuilder()
			tc.setupMock(mockQueries, b)

			view, err := store.FindActiveByCode(ctx, "SUMMER2025")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SUMMER2025", view.ReferralCode)
			assert.Equal(t, "Summer Sale", view.PromotionTitle)
			require.NotNil(t, view.PromotionPrice)
			assert.True(t, view.PromotionPrice.Equal(decimal.RequireFromString("49.90")))
			require.NotNil(t, view.Commission)
			assert.Equal(t, "percentage", view.Commission.Type)
			assert.True(t, view.Commission.Value.Equal(decimal.NewFromInt(10)))
			require.NotNil(t, view.ExtraDiscount)
			assert.Equal(t, "fixed", view.ExtraDiscount.Type)
			assert.Nil(t, view.DeletedAt)
		})
	}
}

func TestAssignmentReadStore_FindByID_WithoutRules(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAssignmentReadQueries(ctrl)
	store := readstore.NewAssignmentReadStore(mockQueries, &mockDBTX{})

	b := builder.NewAssignmentBuilder().With(func(b *builder.AssignmentBuilder) {
		b.Commission = nil
		b.PromotionPrice = nil
	}).Inactive()
	mockQueries.EXPECT().GetAssignmentByID(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

	view, err := store.FindByID(ctx, b.ID)

	require.NoError(t, err)
	assert.Nil(t, view.Commission)
	assert.Nil(t, view.ExtraDiscount)
	assert.Nil(t, view.PromotionPrice)
	assert.False(t, view.IsActive)
	assert.NotNil(t, view.DeactivatedAt)
}

// =============================================================================
// List Tests
// =============================================================================

func TestAssignmentReadStore_ListByMerchant_PromotionFilter(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	promotionID := uuid.New()

	testCases := []struct {
		name        string
		promotionID *uuid.UUID
		expectParam pgtype.UUID
	}{
		{name: "all promotions", promotionID: nil, expectParam: pgtype.UUID{}},
		{name: "single promotion", promotionID: &promotionID, expectParam: pgtype.UUID{Bytes: promotionID, Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAssignmentReadQueries(ctrl)
			store := readstore.NewAssignmentReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().ListAssignmentsByMerchant(ctx, gomock.Any(), sqlc.ListAssignmentsByMerchantParams{
				MerchantID:  merchantID,
				PromotionID: tc.expectParam,
			}).Return([]sqlc.Assignments{builder.NewAssignmentBuilder().BuildInfra()}, nil)

			views, err := store.ListByMerchant(ctx, merchantID, tc.promotionID)

			require.NoError(t, err)
			assert.Len(t, views, 1)
		})
	}
}

// =============================================================================
// Existence Tests
// =============================================================================

func TestAssignmentReadStore_CodeExists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAssignmentReadQueries(ctrl)
	store := readstore.NewAssignmentReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ExistsReferralCode(ctx, gomock.Any(), "SUMMER2025").Return(true, nil)
	mockQueries.EXPECT().ExistsReferralCode(ctx, gomock.Any(), "WINTER2025").Return(false, errDBConnectionLost)

	exists, err := store.CodeExists(ctx, "SUMMER2025")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.CodeExists(ctx, "WINTER2025")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestAssignmentReadStore_ActivePairExists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAssignmentReadQueries(ctrl)
	store := readstore.NewAssignmentReadStore(mockQueries, &mockDBTX{})

	promotionID, influencerID := uuid.New(), uuid.New()
	mockQueries.EXPECT().ExistsActiveAssignment(ctx, gomock.Any(), sqlc.ExistsActiveAssignmentParams{
		PromotionID:  promotionID,
		InfluencerID: influencerID,
	}).Return(false, nil)

	exists, err := store.ActivePairExists(ctx, promotionID, influencerID)

	require.NoError(t, err)
	assert.False(t, exists)
}
