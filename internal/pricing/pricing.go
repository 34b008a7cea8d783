package pricing

import (
	"math"

	pkgerrors "github.com/angelmondragon/invoicing-backend/pkg/errors"
)

// Tax and discount caps are process constants, not configuration: two
// instances running the same version must always agree on a total.
const (
	// TaxRate is the flat rate applied to the discounted subtotal.
	TaxRate = 0.19
	// MaxDiscountPercent caps percentage discount policies at construction.
	MaxDiscountPercent = 0.50
)

// LineItem is one priced line on a quote. Validation happens during
// computation, so literals and zero values stay cheap to build.
type LineItem struct {
	UnitPrice float64
	Quantity  int
}

// Breakdown carries the figures of one pricing run. Total is rounded to two
// decimals; the remaining fields are raw pipeline values so callers can
// format them however they need.
type Breakdown struct {
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
}

// ComputeTotal prices the given line items: subtotal, minus the policy
// discount, plus tax, rounded half away from zero to two decimals.
//
// A nil items slice is rejected; an empty one prices to zero. A nil policy
// means no discount. Caller mistakes come back as INVALID_ARGUMENT; a policy
// that breaks its [0, subtotal] bound comes back as INVARIANT_VIOLATION and
// fails the whole computation, never a partial result.
func ComputeTotal(items []LineItem, policy DiscountPolicy) (float64, error) {
	breakdown, err := ComputeBreakdown(items, policy)
	if err != nil {
		return 0, err
	}
	return breakdown.Total, nil
}

// ComputeBreakdown runs the same pipeline as ComputeTotal and exposes the
// intermediate figures.
func ComputeBreakdown(items []LineItem, policy DiscountPolicy) (Breakdown, error) {
	if items == nil {
		return Breakdown{}, pkgerrors.New(pkgerrors.CodeInvalidArgument, "items cannot be nil")
	}

	subtotal := 0.0
	for i, item := range items {
		if item.UnitPrice < 0 {
			return Breakdown{}, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
				"item %d: unit price cannot be negative, got %v", i, item.UnitPrice)
		}
		if item.Quantity <= 0 {
			return Breakdown{}, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
				"item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	discount := 0.0
	if policy != nil {
		var err error
		discount, err = policy.Apply(subtotal)
		if err != nil {
			return Breakdown{}, err
		}
	}
	// The policy contract is re-checked here: a breach is a defect in the
	// policy, not a caller error.
	if discount < 0 || discount > subtotal {
		return Breakdown{}, pkgerrors.Newf(pkgerrors.CodeInvariant,
			"policy returned discount %v outside [0, %v]", discount, subtotal)
	}

	taxed := (subtotal - discount) * (1 + TaxRate)
	if taxed < 0 {
		return Breakdown{}, pkgerrors.Newf(pkgerrors.CodeInvariant,
			"total %v went negative after tax", taxed)
	}

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      taxed - (subtotal - discount),
		Total:    roundCurrency(taxed),
	}, nil
}

// roundCurrency rounds half away from zero to two decimals.
func roundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
