//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"referral-engine/internal/domain/attribution"
	"referral-engine/internal/infra"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/clock"
	"referral-engine/internal/pkg/reftoken"
	"referral-engine/internal/usecase/commands"
	"referral-engine/tests/common/builder"
	"referral-engine/tests/common/uowtest"
	sharedmock "referral-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTokenSecret = "attribution-test-secret"

var errNoRows = infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)

type attributionDeps struct {
	f       *uowtest.Fixture
	carrier *sharedmock.MockTokenCarrier
	cache   *sharedmock.MockCounterCache
	codec   *reftoken.Codec
	uc      commands.AttributionCommands
}

func newAttributionDeps(ctrl *gomock.Controller) *attributionDeps {
	d := &attributionDeps{
		f:       uowtest.New(ctrl),
		carrier: sharedmock.NewMockTokenCarrier(ctrl),
		cache:   sharedmock.NewMockCounterCache(ctrl),
		codec:   reftoken.NewCodec(testTokenSecret),
	}
	d.uc = commands.NewAttributionUseCase(d.f.UoW, d.codec, d.cache, clock.NewMockClock(fixedNow), 0)
	return d
}

func (d *attributionDeps) token(t *testing.T, code string, issued time.Time) string {
	t.Helper()
	value, err := d.codec.Encode(attribution.NewToken(code, issued))
	require.NoError(t, err)
	return value
}

// =============================================================================
// RecordVisit Tests
// =============================================================================

func TestAttributionCommands_RecordVisit(t *testing.T) {
	ctx := context.Background()
	a := builder.NewAssignmentBuilder().BuildDomain()

	t.Run("success: records visit and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAttributionDeps(ctrl)

		d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
		d.f.Visits.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, v *attribution.Visit) error {
				assert.Equal(t, a.ID(), v.AssignmentID())
				assert.Equal(t, a.InfluencerID(), v.InfluencerID())
				assert.Equal(t, "Mozilla/5.0", v.UserAgent())
				assert.Equal(t, fixedNow, v.VisitedAt())
				return nil
			})
		var issued string
		d.carrier.EXPECT().Write(gomock.Any(), attribution.DefaultWindow).Do(func(value string, _ time.Duration) {
			issued = value
		})
		d.cache.EXPECT().IncrVisits(ctx, a.ID())

		ok := d.uc.RecordVisit(ctx, commands.RecordVisitInput{
			ReferralCode: "summer2025",
			PromotionID:  a.PromotionID(),
			UserAgent:    "Mozilla/5.0",
		}, d.carrier)

		require.True(t, ok)
		token, err := d.codec.Decode(issued)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER2025", token.Code)
		assert.True(t, token.IssuedAt.Equal(fixedNow))
	})

	testCases := []struct {
		name      string
		code      string
		promotion uuid.UUID
		setupMock func(*attributionDeps)
	}{
		{
			name:      "blank code",
			code:      "  ",
			promotion: a.PromotionID(),
			setupMock: func(*attributionDeps) {},
		},
		{
			name:      "unknown code",
			code:      "NOPE12345",
			promotion: a.PromotionID(),
			setupMock: func(d *attributionDeps) {
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "NOPE12345").Return(nil, errNoRows)
			},
		},
		{
			name:      "inactive assignment",
			code:      "SUMMER2025",
			promotion: a.PromotionID(),
			setupMock: func(d *attributionDeps) {
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(builder.NewAssignmentBuilder().Inactive().BuildDomain(), nil)
			},
		},
		{
			name:      "code belongs to another promotion",
			code:      "SUMMER2025",
			promotion: uuid.New(),
			setupMock: func(d *attributionDeps) {
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
			},
		},
		{
			name:      "visit insert fails",
			code:      "SUMMER2025",
			promotion: a.PromotionID(),
			setupMock: func(d *attributionDeps) {
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
				d.f.Visits.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run("not tracked: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newAttributionDeps(ctrl)
			tc.setupMock(d)

			ok := d.uc.RecordVisit(ctx, commands.RecordVisitInput{ReferralCode: tc.code, PromotionID: tc.promotion}, d.carrier)

			assert.False(t, ok)
		})
	}
}

// =============================================================================
// ResolveConversion Tests
// =============================================================================

func TestAttributionCommands_ResolveConversion_Summer2025(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newAttributionDeps(ctrl)

	a := builder.NewAssignmentBuilder().BuildDomain()
	p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
		b.PromotionID = a.PromotionID()
		b.MerchantID = a.MerchantID()
		b.PaidAmount = decimal.RequireFromString("50.00")
	}).BuildDomain()

	d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-2*24*time.Hour)), true)
	d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
	d.f.Reads.EXPECT().PurchaseByID(ctx, p.ID()).Return(p, nil)
	var credited decimal.Decimal
	d.f.Purchases.EXPECT().
		Attribute(ctx, gomock.Any(), p.ID(), a.PromotionID(), "SUMMER2025", a.InfluencerID(), gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ uuid.UUID, _ string, _ uuid.UUID, amount decimal.Decimal, _ time.Time) (bool, error) {
			credited = amount
			return true, nil
		})
	d.f.Visits.EXPECT().MarkLatestConverted(ctx, gomock.Any(), a.ID(), a.PromotionID(), p.ID(), fixedNow).Return(true, nil)
	payload := d.f.ExpectEvent(commands.EventConversionAttributed)
	d.carrier.EXPECT().Clear()
	d.cache.EXPECT().IncrConversions(ctx, a.ID())

	ok := d.uc.ResolveConversion(ctx, p.ID(), a.PromotionID(), d.carrier)

	require.True(t, ok)
	assert.True(t, credited.Equal(decimal.NewFromInt(5)), "commission = %s", credited)

	var ev commands.ConversionAttributedEvent
	require.NoError(t, json.Unmarshal(*payload, &ev))
	assert.Equal(t, p.ID(), ev.PurchaseID)
	assert.Equal(t, "SUMMER2025", ev.ReferralCode)
	assert.True(t, ev.CommissionAmount.Equal(decimal.NewFromInt(5)))
}

func TestAttributionCommands_ResolveConversion_NotAttributed(t *testing.T) {
	ctx := context.Background()
	a := builder.NewAssignmentBuilder().BuildDomain()
	purchaseID := uuid.New()

	testCases := []struct {
		name      string
		promotion uuid.UUID
		setupMock func(*testing.T, *attributionDeps)
	}{
		{
			name:      "no token",
			promotion: a.PromotionID(),
			setupMock: func(_ *testing.T, d *attributionDeps) {
				d.carrier.EXPECT().Read().Return("", false)
			},
		},
		{
			name:      "tampered token is cleared",
			promotion: a.PromotionID(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow)+"x", true)
				d.carrier.EXPECT().Clear()
			},
		},
		{
			name:      "expired token is cleared",
			promotion: a.PromotionID(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-attribution.DefaultWindow-time.Second)), true)
				d.carrier.EXPECT().Clear()
			},
		},
		{
			name:      "assignment deactivated before conversion",
			promotion: a.PromotionID(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-time.Hour)), true)
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(nil, errNoRows)
				d.carrier.EXPECT().Clear()
			},
		},
		{
			name:      "token from another promotion is kept",
			promotion: uuid.New(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-time.Hour)), true)
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
			},
		},
		{
			name:      "unknown purchase",
			promotion: a.PromotionID(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-time.Hour)), true)
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
				d.f.Reads.EXPECT().PurchaseByID(ctx, purchaseID).Return(nil, errNoRows)
			},
		},
		{
			name:      "purchase already attributed",
			promotion: a.PromotionID(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
					b.ID = purchaseID
					b.PromotionID = a.PromotionID()
				}).AttributedTo("OTHERCODE1", uuid.New(), decimal.NewFromInt(3)).BuildDomain()

				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-time.Hour)), true)
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
				d.f.Reads.EXPECT().PurchaseByID(ctx, purchaseID).Return(p, nil)
			},
		},
		{
			name:      "lost the attribution race",
			promotion: a.PromotionID(),
			setupMock: func(t *testing.T, d *attributionDeps) {
				p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
					b.ID = purchaseID
					b.PromotionID = a.PromotionID()
				}).BuildDomain()

				d.carrier.EXPECT().Read().Return(d.token(t, "SUMMER2025", fixedNow.Add(-time.Hour)), true)
				d.f.Reads.EXPECT().AssignmentByCode(ctx, "SUMMER2025").Return(a, nil)
				d.f.Reads.EXPECT().PurchaseByID(ctx, purchaseID).Return(p, nil)
				d.f.Purchases.EXPECT().Attribute(ctx, gomock.Any(), purchaseID, a.PromotionID(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newAttributionDeps(ctrl)
			tc.setupMock(t, d)
			d.f.ExpectNoEvents()

			ok := d.uc.ResolveConversion(ctx, purchaseID, tc.promotion, d.carrier)

			assert.False(t, ok)
		})
	}
}
