//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/party"
	"referral-engine/internal/usecase/queries"
	queriesmock "referral-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssignmentQueries_List(t *testing.T) {
	ctx := context.Background()
	partyID, promotionID := uuid.New(), uuid.New()
	views := []*queries.AssignmentView{{ID: uuid.New(), ReferralCode: "SUMMER2025"}}

	testCases := []struct {
		name      string
		role      party.Role
		setupMock func(*queriesmock.MockAssignmentReadStore)
		expectErr error
	}{
		{
			name: "merchant",
			role: party.RoleMerchant,
			setupMock: func(m *queriesmock.MockAssignmentReadStore) {
				m.EXPECT().ListByMerchant(ctx, partyID, &promotionID).Return(views, nil)
			},
		},
		{
			name: "influencer",
			role: party.RoleInfluencer,
			setupMock: func(m *queriesmock.MockAssignmentReadStore) {
				m.EXPECT().ListByInfluencer(ctx, partyID, &promotionID).Return(views, nil)
			},
		},
		{
			name:      "service",
			role:      party.RoleService,
			setupMock: func(*queriesmock.MockAssignmentReadStore) {},
			expectErr: queries.ErrAccessDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := queriesmock.NewMockAssignmentReadStore(ctrl)
			tc.setupMock(repo)

			got, err := queries.NewAssignmentQueries(repo).List(ctx, partyID, tc.role, &promotionID)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, views, got)
		})
	}
}

func TestAssignmentQueries_CodeAvailability(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		raw       string
		setupMock func(*queriesmock.MockAssignmentReadStore)
		expect    assignment.Availability
		expectErr bool
	}{
		{
			name: "available",
			raw:  "SUMMER2025",
			setupMock: func(m *queriesmock.MockAssignmentReadStore) {
				m.EXPECT().CodeExists(ctx, "SUMMER2025").Return(false, nil)
			},
			expect: assignment.Availability{Code: "SUMMER2025", Available: true},
		},
		{
			name:      "lowercase is a format error",
			raw:       "summer2025",
			setupMock: func(*queriesmock.MockAssignmentReadStore) {},
			expect:    assignment.Availability{Code: "summer2025", Reason: assignment.ReasonInvalidFormat},
		},
		{
			name: "taken",
			raw:  "SUMMER2025",
			setupMock: func(m *queriesmock.MockAssignmentReadStore) {
				m.EXPECT().CodeExists(ctx, "SUMMER2025").Return(true, nil)
			},
			expect: assignment.Availability{Code: "SUMMER2025", Reason: assignment.ReasonAlreadyExists},
		},
		{
			name:      "too short never hits the store",
			raw:       "ABC",
			setupMock: func(*queriesmock.MockAssignmentReadStore) {},
			expect:    assignment.Availability{Code: "ABC", Reason: assignment.ReasonInvalidLength},
		},
		{
			name:      "bad characters",
			raw:       "SUMMER 2025",
			setupMock: func(*queriesmock.MockAssignmentReadStore) {},
			expect:    assignment.Availability{Code: "SUMMER 2025", Reason: assignment.ReasonInvalidFormat},
		},
		{
			name: "store failure",
			raw:  "SUMMER2025",
			setupMock: func(m *queriesmock.MockAssignmentReadStore) {
				m.EXPECT().CodeExists(ctx, "SUMMER2025").Return(false, errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := queriesmock.NewMockAssignmentReadStore(ctrl)
			tc.setupMock(repo)

			got, err := queries.NewAssignmentQueries(repo).CodeAvailability(ctx, tc.raw)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestAssignmentQueries_Get(t *testing.T) {
	ctx := context.Background()
	view := &queries.AssignmentView{ID: uuid.New(), MerchantID: uuid.New(), InfluencerID: uuid.New()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := queriesmock.NewMockAssignmentReadStore(ctrl)
	repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil).Times(2)
	repo.EXPECT().FindByID(ctx, gomock.Not(view.ID)).Return(nil, errNoRows)

	q := queries.NewAssignmentQueries(repo)

	got, err := q.Get(ctx, view.ID, view.InfluencerID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	_, err = q.Get(ctx, view.ID, uuid.New())
	assert.ErrorIs(t, err, assignment.ErrNotFound)

	_, err = q.Get(ctx, uuid.New(), view.MerchantID)
	assert.ErrorIs(t, err, assignment.ErrNotFound)
}
