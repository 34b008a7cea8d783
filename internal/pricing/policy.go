package pricing

import (
	"math"

	pkgerrors "github.com/angelmondragon/invoicing-backend/pkg/errors"
)

// DiscountPolicy computes the discount for a quote subtotal.
//
// Implementations must be pure: the same subtotal always yields the same
// discount, with no side effects. Apply accepts any subtotal >= 0 and
// returns a value within [0, subtotal]. Variants may not narrow the accepted
// range or widen the returned one; the pipeline re-checks the bound and
// treats a breach as an invariant failure.
type DiscountPolicy interface {
	Apply(subtotal float64) (float64, error)
}

// PercentageDiscountPolicy discounts a fixed fraction of the subtotal.
type PercentageDiscountPolicy struct {
	percent float64
}

// NewPercentageDiscountPolicy validates the fraction once so every value in
// circulation is usable. Percent is a fraction, not percent points: 0.10
// means ten percent off.
func NewPercentageDiscountPolicy(percent float64) (PercentageDiscountPolicy, error) {
	if percent < 0 || percent > MaxDiscountPercent {
		return PercentageDiscountPolicy{}, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
			"discount percent must be within [0, %v], got %v", MaxDiscountPercent, percent)
	}
	return PercentageDiscountPolicy{percent: percent}, nil
}

// Percent returns the configured fraction.
func (p PercentageDiscountPolicy) Percent() float64 {
	return p.percent
}

// Apply implements DiscountPolicy.
func (p PercentageDiscountPolicy) Apply(subtotal float64) (float64, error) {
	if subtotal < 0 {
		return 0, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
			"subtotal cannot be negative, got %v", subtotal)
	}
	return subtotal * p.percent, nil
}

// FixedAmountDiscountPolicy discounts a flat amount, clamped at the subtotal
// so a large voucher never drives the total negative.
type FixedAmountDiscountPolicy struct {
	amount float64
}

// NewFixedAmountDiscountPolicy rejects negative amounts.
func NewFixedAmountDiscountPolicy(amount float64) (FixedAmountDiscountPolicy, error) {
	if amount < 0 {
		return FixedAmountDiscountPolicy{}, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
			"discount amount cannot be negative, got %v", amount)
	}
	return FixedAmountDiscountPolicy{amount: amount}, nil
}

// Amount returns the configured flat discount.
func (p FixedAmountDiscountPolicy) Amount() float64 {
	return p.amount
}

// Apply implements DiscountPolicy.
func (p FixedAmountDiscountPolicy) Apply(subtotal float64) (float64, error) {
	if subtotal < 0 {
		return 0, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
			"subtotal cannot be negative, got %v", subtotal)
	}
	return math.Min(p.amount, subtotal), nil
}
