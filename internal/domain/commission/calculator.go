package commission

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Commission returns the amount owed for one attributed sale. The result is
// not rounded; callers round with Round2 only when reporting.
func Commission(sale decimal.Decimal, rule *Rule) decimal.Decimal {
	if rule == nil {
		return decimal.Zero
	}
	switch rule.Type {
	case RuleTypePercentage:
		return sale.Mul(rule.Value).Div(hundred)
	case RuleTypeFixed:
		return rule.Value
	default:
		return decimal.Zero
	}
}

// Round2 rounds to currency precision, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
