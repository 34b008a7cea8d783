package quotes

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// TotalLine renders the human-readable grand total, e.g. "Total: $26.24".
func (q *Quote) TotalLine() string {
	return fmt.Sprintf("Total: %s%s", q.Symbol, FormatAmount(q.Total))
}
