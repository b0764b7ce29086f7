package converter

import (
	"referral-engine/internal/domain/assignment"
	"referral-engine/internal/domain/commission"
	sqlc "referral-engine/internal/infra/sqlc/generated"
	"referral-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func AssignmentToCreateParams(a *assignment.Assignment) sqlc.CreateAssignmentParams {
	params := sqlc.CreateAssignmentParams{
		ID:             a.ID(),
		PromotionID:    a.PromotionID(),
		InfluencerID:   a.InfluencerID(),
		MerchantID:     a.MerchantID(),
		PromotionTitle: pgconv.OptionalStringToPgtype(a.Promotion().Title),
		PromotionPrice: nullDecimal(a.Promotion().Price),
		ReferralCode:   a.ReferralCode(),
		AssignedAt:     pgconv.TimeToPgtype(a.AssignedAt()),
	}
	if r := a.CommissionRule(); r != nil {
		params.CommissionType = pgconv.StringToPgtype(r.Type.String())
		params.CommissionValue = decimal.NewNullDecimal(r.Value)
		params.CommissionNotes = pgconv.OptionalStringToPgtype(r.Notes)
	}
	if d := a.ExtraDiscount(); d != nil {
		params.ExtraDiscountType = pgconv.StringToPgtype(d.Type.String())
		params.ExtraDiscountValue = decimal.NewNullDecimal(d.Value)
	}
	return params
}

func AssignmentFromRow(row sqlc.Assignments) *assignment.Assignment {
	promotion := assignment.Promotion{
		ID:    row.PromotionID,
		Title: pgconv.StringFromPgtype(row.PromotionTitle),
		Price: decimalPtr(row.PromotionPrice),
	}
	return assignment.Reconstruct(
		row.ID,
		promotion,
		row.InfluencerID,
		row.MerchantID,
		row.ReferralCode,
		ruleFromColumns(row.CommissionType, row.CommissionValue, row.CommissionNotes),
		ruleFromColumns(row.ExtraDiscountType, row.ExtraDiscountValue, pgtype.Text{}),
		row.IsActive,
		pgconv.TimeFromPgtype(row.AssignedAt),
		pgconv.TimePtrFromPgtype(row.DeactivatedAt),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
	)
}

// Stored rules were validated on the way in, so they are rebuilt without re-validation.
func ruleFromColumns(ruleType pgtype.Text, value decimal.NullDecimal, notes pgtype.Text) *commission.Rule {
	if !ruleType.Valid || !value.Valid {
		return nil
	}
	return &commission.Rule{
		Type:  commission.RuleType(ruleType.String),
		Value: value.Decimal,
		Notes: pgconv.StringFromPgtype(notes),
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
