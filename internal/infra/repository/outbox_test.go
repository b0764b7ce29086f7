//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"referral-engine/internal/infra"
	"referral-engine/internal/infra/repository"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	repositorymock "referral-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		dbErr         error
		expectedError bool
	}{
		{name: "success: event queued"},
		{name: "error: database failure", dbErr: errors.New("boom"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOutboxRepository(mockQueries, mockDB)

			payload := []byte(`{"code":"SUMMER2025"}`)
			mockQueries.EXPECT().CreateOutboxEvent(ctx, mockDB, sqlc.CreateOutboxEventParams{
				Kind:     "conversion.attributed",
				Topic:    "referral.conversions",
				EventKey: "SUMMER2025",
				Payload:  payload,
				RunAt:    pgtype.Timestamptz{Time: now, Valid: true},
			}).Return(tc.dbErr)

			err := repo.Enqueue(ctx, mockDB, "conversion.attributed", "referral.conversions", "SUMMER2025", payload, now)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOutboxRepository_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().ClaimQueuedOutboxEvents(ctx, mockDB, sqlc.ClaimQueuedOutboxEventsParams{
		Now: pgtype.Timestamptz{Time: now, Valid: true},
		Lim: 10,
	}).Return([]sqlc.OutboxEvents{{
		ID:       id,
		Kind:     "assignment.created",
		Topic:    "referral.assignments",
		EventKey: "SUMMER2025",
		Payload:  []byte(`{}`),
		Attempts: 2,
	}}, nil)

	events, err := repo.Claim(ctx, mockDB, now, 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, repository.OutboxEvent{
		ID:       id,
		Kind:     "assignment.created",
		Topic:    "referral.assignments",
		Key:      "SUMMER2025",
		Payload:  []byte(`{}`),
		Attempts: 2,
	}, events[0])
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	next := time.Date(2025, 6, 1, 0, 5, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, sqlc.MarkOutboxEventFailedParams{
		LastError:   pgtype.Text{String: "broker unavailable", Valid: true},
		MaxAttempts: 5,
		NextRunAt:   pgtype.Timestamptz{Time: next, Valid: true},
		ID:          id,
	}).Return(nil)

	require.NoError(t, repo.MarkFailed(ctx, mockDB, id, "broker unavailable", 5, next))
}
