package enums

import (
	"fmt"

	pkgerrors "github.com/angelmondragon/invoicing-backend/pkg/errors"
)

// Currency represents supported monetary denominations for invoice totals.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

var validCurrencies = []Currency{
	CurrencyUSD,
	CurrencyEUR,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// Symbol returns the display symbol for the currency. The set is closed on
// purpose: an unmapped currency is a caller error, never a silent fallback,
// so extending the set means extending this switch.
func (c Currency) Symbol() (string, error) {
	switch c {
	case CurrencyUSD:
		return "$", nil
	case CurrencyEUR:
		return "€", nil
	default:
		return "", pkgerrors.Newf(pkgerrors.CodeInvalidArgument, "unsupported currency %q", string(c))
	}
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
