//go:build unit

package commission_test

import (
	"testing"

	"referral-engine/internal/domain/commission"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCommission(t *testing.T) {
	tests := []struct {
		name string
		sale decimal.Decimal
		rule *commission.Rule
		want decimal.Decimal
	}{
		{
			name: "percentage",
			sale: d("100"),
			rule: &commission.Rule{Type: commission.RuleTypePercentage, Value: d("15")},
			want: d("15"),
		},
		{
			name: "fixed ignores sale amount",
			sale: d("100"),
			rule: &commission.Rule{Type: commission.RuleTypeFixed, Value: d("20")},
			want: d("20"),
		},
		{
			name: "no rule owes nothing",
			sale: d("100"),
			rule: nil,
			want: decimal.Zero,
		},
		{
			name: "ten percent of fifty",
			sale: d("50"),
			rule: &commission.Rule{Type: commission.RuleTypePercentage, Value: d("10")},
			want: d("5"),
		},
		{
			name: "fractional percentage keeps precision",
			sale: d("19.99"),
			rule: &commission.Rule{Type: commission.RuleTypePercentage, Value: d("12.5")},
			want: d("2.49875"),
		},
		{
			name: "unknown type owes nothing",
			sale: d("100"),
			rule: &commission.Rule{Type: "tiered", Value: d("5")},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commission.Commission(tt.sale, tt.rule)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCommission_NoRoundingBeforeAggregation(t *testing.T) {
	rule := &commission.Rule{Type: commission.RuleTypePercentage, Value: d("12.5")}

	sum := decimal.Zero
	for range 3 {
		sum = sum.Add(commission.Commission(d("0.98"), rule))
	}

	// 3 x 0.1225 = 0.3675; rounding each sale first would give 0.36.
	assert.True(t, d("0.37").Equal(commission.Round2(sum)), "got %s", commission.Round2(sum))
}

func TestRound2(t *testing.T) {
	assert.True(t, d("2.50").Equal(commission.Round2(d("2.49875"))))
	assert.True(t, d("0.01").Equal(commission.Round2(d("0.005"))))
}

func TestNewRule(t *testing.T) {
	tests := []struct {
		name     string
		ruleType string
		value    string
		errIs    error
	}{
		{name: "percentage", ruleType: "percentage", value: "15"},
		{name: "percentage upper bound", ruleType: "percentage", value: "100"},
		{name: "fixed", ruleType: "fixed", value: "20.00"},
		{name: "zero fixed", ruleType: "fixed", value: "0"},
		{name: "unknown type", ruleType: "tiered", value: "5", errIs: commission.ErrInvalidRuleType},
		{name: "negative", ruleType: "fixed", value: "-1", errIs: commission.ErrNegativeValue},
		{name: "percentage above 100", ruleType: "percentage", value: "100.01", errIs: commission.ErrPercentageTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := commission.NewRule(tt.ruleType, d(tt.value), " note ")
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, commission.RuleType(tt.ruleType), rule.Type)
			assert.Equal(t, "note", rule.Notes)
		})
	}
}
