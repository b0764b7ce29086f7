//go:build unit

package uowtest

import (
	"context"
	"time"

	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/usecase/shared"
	sharedmock "referral-engine/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Fixture is a UnitOfWork whose transactions run the callback directly against mock repositories.
type Fixture struct {
	UoW          *sharedmock.MockUnitOfWork
	Tx           *sharedmock.MockTx
	Reads        *sharedmock.MockCommandReads
	Partnerships *sharedmock.MockPartnershipRepository
	Assignments  *sharedmock.MockAssignmentRepository
	Visits       *sharedmock.MockVisitRepository
	Purchases    *sharedmock.MockPurchaseRepository
	Outbox       *sharedmock.MockOutboxRepository
}

func New(ctrl *gomock.Controller) *Fixture {
	f := &Fixture{
		UoW:          sharedmock.NewMockUnitOfWork(ctrl),
		Tx:           sharedmock.NewMockTx(ctrl),
		Reads:        sharedmock.NewMockCommandReads(ctrl),
		Partnerships: sharedmock.NewMockPartnershipRepository(ctrl),
		Assignments:  sharedmock.NewMockAssignmentRepository(ctrl),
		Visits:       sharedmock.NewMockVisitRepository(ctrl),
		Purchases:    sharedmock.NewMockPurchaseRepository(ctrl),
		Outbox:       sharedmock.NewMockOutboxRepository(ctrl),
	}

	f.UoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.Tx)
		}).AnyTimes()
	f.UoW.EXPECT().CommandReads().Return(f.Reads).AnyTimes()

	f.Tx.EXPECT().DB().Return(nil).AnyTimes()
	f.Tx.EXPECT().Reads().Return(f.Reads).AnyTimes()
	f.Tx.EXPECT().Partnerships().Return(f.Partnerships).AnyTimes()
	f.Tx.EXPECT().Assignments().Return(f.Assignments).AnyTimes()
	f.Tx.EXPECT().Visits().Return(f.Visits).AnyTimes()
	f.Tx.EXPECT().Purchases().Return(f.Purchases).AnyTimes()
	f.Tx.EXPECT().Outbox().Return(f.Outbox).AnyTimes()
	return f
}

// ExpectNoEvents fails the test if anything is enqueued.
func (f *Fixture) ExpectNoEvents() {
	f.Outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
}

// ExpectEvent expects one outbox event of kind and returns its captured payload.
func (f *Fixture) ExpectEvent(kind string) *[]byte {
	var payload []byte
	f.Outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), kind, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _, _ string, body []byte, _ time.Time) error {
			payload = body
			return nil
		})
	return &payload
}
