package queries

import (
	"context"
	"time"

	"referral-engine/internal/domain/partnership"
	"referral-engine/internal/domain/party"
	"referral-engine/internal/infra"

	"github.com/google/uuid"
)

type PartnershipReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PartnershipView, error)
	FindByMerchantFirstPage(ctx context.Context, merchantID uuid.UUID, status *partnership.Status, limit int32) ([]*PartnershipView, error)
	FindByMerchantKeyset(ctx context.Context, merchantID uuid.UUID, status *partnership.Status, lastRequestedAt time.Time, lastID uuid.UUID, limit int32) ([]*PartnershipView, error)
	FindByInfluencerFirstPage(ctx context.Context, influencerID uuid.UUID, status *partnership.Status, limit int32) ([]*PartnershipView, error)
	FindByInfluencerKeyset(ctx context.Context, influencerID uuid.UUID, status *partnership.Status, lastRequestedAt time.Time, lastID uuid.UUID, limit int32) ([]*PartnershipView, error)
}

type PartnershipQueries interface {
	// List returns the party's partnerships, newest request first.
	List(ctx context.Context, partyID uuid.UUID, role party.Role, status *partnership.Status, cursor *Cursor, limit int) ([]*PartnershipView, *Cursor, error)
	Get(ctx context.Context, id, partyID uuid.UUID) (*PartnershipView, error)
}

type partnershipQueriesImpl struct {
	repo PartnershipReadStore
}

func NewPartnershipQueries(repo PartnershipReadStore) PartnershipQueries {
	return &partnershipQueriesImpl{repo: repo}
}

func (q *partnershipQueriesImpl) List(ctx context.Context, partyID uuid.UUID, role party.Role, status *partnership.Status, cursor *Cursor, limit int) ([]*PartnershipView, *Cursor, error) {
	if role != party.RoleMerchant && role != party.RoleInfluencer {
		return nil, nil, ErrAccessDenied
	}

	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var rows []*PartnershipView
	var err error
	if cursor == nil || cursor.After == "" {
		if role == party.RoleMerchant {
			rows, err = q.repo.FindByMerchantFirstPage(ctx, partyID, status, fetch)
		} else {
			rows, err = q.repo.FindByInfluencerFirstPage(ctx, partyID, status, fetch)
		}
	} else {
		lastRequestedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		if role == party.RoleMerchant {
			rows, err = q.repo.FindByMerchantKeyset(ctx, partyID, status, lastRequestedAt, lastID, fetch)
		} else {
			rows, err = q.repo.FindByInfluencerKeyset(ctx, partyID, status, lastRequestedAt, lastID, fetch)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.RequestedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// Get hides rows the caller is not a party to behind not found.
func (q *partnershipQueriesImpl) Get(ctx context.Context, id, partyID uuid.UUID) (*PartnershipView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, partnership.ErrNotFound
		}
		return nil, err
	}
	if view.MerchantID != partyID && view.InfluencerID != partyID {
		return nil, partnership.ErrNotFound
	}
	return view, nil
}
