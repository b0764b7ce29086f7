//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/infra"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/usecase/commands"
	"referral-engine/tests/common/builder"
	"referral-engine/tests/common/uowtest"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Request Tests
// =============================================================================

func TestPartnershipCommands_Request(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMock   func(*uowtest.Fixture, *builder.PartnershipBuilder)
		expectErr   error
		expectEvent bool
	}{
		{
			name: "success: new request is pending",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				f.Partnerships.EXPECT().UpsertRequest(ctx, gomock.Any(), gomock.Any()).Return(b.BuildDomain(), true, nil)
			},
			expectEvent: true,
		},
		{
			name: "conflict: already pending",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				f.Partnerships.EXPECT().UpsertRequest(ctx, gomock.Any(), gomock.Any()).Return(b.BuildDomain(), false, nil)
			},
			expectErr: partnership.ErrAlreadyPending,
		},
		{
			name: "conflict: already approved",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				f.Partnerships.EXPECT().UpsertRequest(ctx, gomock.Any(), gomock.Any()).Return(b.Approved().BuildDomain(), false, nil)
			},
			expectErr: partnership.ErrAlreadyApproved,
		},
		{
			name: "success: retried once when the row vanished",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				vanished := infra.WrapRepoErr("partnership disappeared", pgx.ErrNoRows, infra.KindNotFound)
				gomock.InOrder(
					f.Partnerships.EXPECT().UpsertRequest(ctx, gomock.Any(), gomock.Any()).Return(nil, false, vanished),
					f.Partnerships.EXPECT().UpsertRequest(ctx, gomock.Any(), gomock.Any()).Return(b.BuildDomain(), true, nil),
				)
			},
			expectEvent: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := uowtest.New(ctrl)
			b := builder.NewPartnershipBuilder()
			tc.setupMock(f, b)

			var payload *[]byte
			if tc.expectEvent {
				payload = f.ExpectEvent(commands.EventPartnershipRequested)
			} else {
				f.ExpectNoEvents()
			}

			uc := commands.NewPartnershipUseCase(f.UoW, clock.NewMockClock(fixedNow))
			saved, err := uc.Request(ctx, commands.RequestPartnershipInput{
				MerchantID:   b.MerchantID,
				InfluencerID: b.InfluencerID,
				Message:      "Let's work together",
			})

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, partnership.StatusPending, saved.Status())

			var ev commands.PartnershipEvent
			require.NoError(t, json.Unmarshal(*payload, &ev))
			assert.Equal(t, b.ID, ev.PartnershipID)
			assert.Equal(t, "pending", ev.Status)
		})
	}
}

func TestPartnershipCommands_Request_Validation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := uowtest.New(ctrl)
	uc := commands.NewPartnershipUseCase(f.UoW, clock.NewMockClock(fixedNow))
	b := builder.NewPartnershipBuilder()

	_, err := uc.Request(ctx, commands.RequestPartnershipInput{MerchantID: b.MerchantID, InfluencerID: b.MerchantID})

	assert.ErrorIs(t, err, partnership.ErrSelfPartnership)
}

func TestPartnershipCommands_Request_DBFailureNotRetried(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := uowtest.New(ctrl)
	b := builder.NewPartnershipBuilder()
	dbErr := infra.WrapRepoErr("failed to upsert", errors.New("connection reset"))
	f.Partnerships.EXPECT().UpsertRequest(ctx, gomock.Any(), gomock.Any()).Return(nil, false, dbErr).Times(1)

	uc := commands.NewPartnershipUseCase(f.UoW, clock.NewMockClock(fixedNow))
	_, err := uc.Request(ctx, commands.RequestPartnershipInput{MerchantID: b.MerchantID, InfluencerID: b.InfluencerID})

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Respond Tests
// =============================================================================

func TestPartnershipCommands_Respond(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		action       string
		notes        string
		setupMock    func(*uowtest.Fixture, *builder.PartnershipBuilder)
		expectErr    error
		expectStatus partnership.Status
	}{
		{
			name:   "success: approve",
			action: "approved",
			notes:  "Happy to join",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				f.Partnerships.EXPECT().
					Respond(ctx, gomock.Any(), b.ID, b.InfluencerID, partnership.StatusApproved, "Happy to join", fixedNow).
					Return(b.Approved().BuildDomain(), nil)
				f.ExpectEvent(commands.EventPartnershipResponded)
			},
			expectStatus: partnership.StatusApproved,
		},
		{
			name:   "success: reject",
			action: "rejected",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				f.Partnerships.EXPECT().
					Respond(ctx, gomock.Any(), b.ID, b.InfluencerID, partnership.StatusRejected, "", fixedNow).
					Return(b.Rejected().BuildDomain(), nil)
				f.ExpectEvent(commands.EventPartnershipResponded)
			},
			expectStatus: partnership.StatusRejected,
		},
		{
			name:   "error: not pending or not addressed to influencer",
			action: "approved",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {
				f.Partnerships.EXPECT().Respond(ctx, gomock.Any(), b.ID, b.InfluencerID, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, infra.WrapRepoErr("pending partnership not found", pgx.ErrNoRows, infra.KindNotFound))
				f.ExpectNoEvents()
			},
			expectErr: partnership.ErrNotFound,
		},
		{
			name:      "error: invalid action",
			action:    "maybe",
			setupMock: func(f *uowtest.Fixture, b *builder.PartnershipBuilder) {},
			expectErr: partnership.ErrInvalidAction,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := uowtest.New(ctrl)
			b := builder.NewPartnershipBuilder()
			tc.setupMock(f, b)

			uc := commands.NewPartnershipUseCase(f.UoW, clock.NewMockClock(fixedNow))
			updated, err := uc.Respond(ctx, commands.RespondPartnershipInput{
				PartnershipID: b.ID,
				InfluencerID:  b.InfluencerID,
				Action:        tc.action,
				Notes:         tc.notes,
			})

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectStatus, updated.Status())
		})
	}
}

// =============================================================================
// Cancel Tests
// =============================================================================

func TestPartnershipCommands_Cancel_IsSilentWhenNothingDeleted(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := uowtest.New(ctrl)
	b := builder.NewPartnershipBuilder()
	f.Partnerships.EXPECT().DeletePending(ctx, gomock.Any(), b.ID, b.MerchantID).Return(false, nil)

	uc := commands.NewPartnershipUseCase(f.UoW, clock.NewMockClock(fixedNow))

	assert.NoError(t, uc.Cancel(ctx, b.ID, b.MerchantID))
}
