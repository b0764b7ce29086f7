package converter

import (
	"referral-engine/internal/domain/partnership"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"
)

func PartnershipToUpsertParams(p *partnership.Partnership) sqlc.UpsertPartnershipRequestParams {
	return sqlc.UpsertPartnershipRequestParams{
		ID:           p.ID(),
		MerchantID:   p.MerchantID(),
		InfluencerID: p.InfluencerID(),
		Message:      pgconv.OptionalStringToPgtype(p.Message()),
		RequestedAt:  pgconv.TimeToPgtype(p.RequestedAt()),
	}
}

func PartnershipFromRow(row sqlc.Partnerships) *partnership.Partnership {
	return partnership.Reconstruct(
		row.ID,
		row.MerchantID,
		row.InfluencerID,
		partnership.Status(row.Status),
		pgconv.StringFromPgtype(row.Message),
		pgconv.StringFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.RequestedAt),
		pgconv.TimePtrFromPgtype(row.RespondedAt),
	)
}
