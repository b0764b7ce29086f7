package converter

import (
	"referral-engine/internal/domain/attribution"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
)

func VisitToCreateParams(v *attribution.Visit) sqlc.CreateVisitParams {
	return sqlc.CreateVisitParams{
		ID:           v.ID(),
		AssignmentID: v.AssignmentID(),
		PromotionID:  v.PromotionID(),
		InfluencerID: v.InfluencerID(),
		VisitedAt:    pgconv.TimeToPgtype(v.VisitedAt()),
		UserAgent:    pgconv.OptionalStringToPgtype(v.UserAgent()),
		Referrer:     pgconv.OptionalStringToPgtype(v.Referrer()),
	}
}
