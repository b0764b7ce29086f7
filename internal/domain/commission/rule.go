package commission

import (
	"strings"

	"referral-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRuleType  = errs.New("rule type must be percentage or fixed")
	ErrNegativeValue    = errs.New("rule value must not be negative")
	ErrPercentageTooBig = errs.New("percentage rule value must not exceed 100")
)

type RuleType string

const (
	RuleTypePercentage RuleType = "percentage"
	RuleTypeFixed      RuleType = "fixed"
)

func (t RuleType) String() string {
	return string(t)
}

func NewRuleType(s string) (RuleType, error) {
	switch RuleType(s) {
	case RuleTypePercentage, RuleTypeFixed:
		return RuleType(s), nil
	default:
		return "", ErrInvalidRuleType
	}
}

// Rule is a {type, value} pair. It describes both the commission owed to an
// influencer and the optional extra discount granted to the visitor.
type Rule struct {
	Type  RuleType
	Value decimal.Decimal
	Notes string
}

func NewRule(ruleType string, value decimal.Decimal, notes string) (*Rule, error) {
	t, err := NewRuleType(ruleType)
	if err != nil {
		return nil, err
	}
	if value.IsNegative() {
		return nil, ErrNegativeValue
	}
	if t == RuleTypePercentage && value.GreaterThan(hundred) {
		return nil, ErrPercentageTooBig
	}
	return &Rule{Type: t, Value: value, Notes: strings.TrimSpace(notes)}, nil
}
