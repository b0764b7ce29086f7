package queries

import (
	"context"

	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/party"
	"referral-engine/internal/infra"

	"github.com/google/uuid"
)

type AssignmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssignmentView, error)
	FindActiveByCode(ctx context.Context, code string) (*AssignmentView, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, promotionID *uuid.UUID) ([]*AssignmentView, error)
	ListByInfluencer(ctx context.Context, influencerID uuid.UUID, promotionID *uuid.UUID) ([]*AssignmentView, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	ActivePairExists(ctx context.Context, promotionID, influencerID uuid.UUID) (bool, error)
}

type AssignmentQueries interface {
	List(ctx context.Context, partyID uuid.UUID, role party.Role, promotionID *uuid.UUID) ([]*AssignmentView, error)
	// Get returns an assignment visible to its merchant or influencer.
	Get(ctx context.Context, id, partyID uuid.UUID) (*AssignmentView, error)
	// CodeAvailability checks a manual code without reserving it.
	CodeAvailability(ctx context.Context, raw string) (assignment.Availability, error)
}

type assignmentQueriesImpl struct {
	repo AssignmentReadStore
}

func NewAssignmentQueries(repo AssignmentReadStore) AssignmentQueries {
	return &assignmentQueriesImpl{repo: repo}
}

func (q *assignmentQueriesImpl) List(ctx context.Context, partyID uuid.UUID, role party.Role, promotionID *uuid.UUID) ([]*AssignmentView, error) {
	switch role {
	case party.RoleMerchant:
		return q.repo.ListByMerchant(ctx, partyID, promotionID)
	case party.RoleInfluencer:
		return q.repo.ListByInfluencer(ctx, partyID, promotionID)
	default:
		return nil, ErrAccessDenied
	}
}

func (q *assignmentQueriesImpl) Get(ctx context.Context, id, partyID uuid.UUID) (*AssignmentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, assignment.ErrNotFound
		}
		return nil, err
	}
	if view.MerchantID != partyID && view.InfluencerID != partyID {
		return nil, assignment.ErrNotFound
	}
	return view, nil
}

func (q *assignmentQueriesImpl) CodeAvailability(ctx context.Context, raw string) (assignment.Availability, error) {
	code, err := assignment.ParseCode(raw)
	if err != nil {
		return assignment.Unavailable(raw, err), nil
	}
	exists, err := q.repo.CodeExists(ctx, code)
	if err != nil {
		return assignment.Availability{}, err
	}
	if exists {
		return assignment.Unavailable(code, assignment.ErrCodeAlreadyExists), nil
	}
	return assignment.Available(code), nil
}
