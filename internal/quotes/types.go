package quotes

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/invoicing-backend/pkg/enums"
)

// QuoteInput carries one quote request into the service.
type QuoteInput struct {
	Currency     string
	DiscountKind string
	// Percent is the fraction for percentage discounts; Amount is the flat
	// value for fixed ones. Only the field matching DiscountKind is read.
	Percent float64
	Amount  float64
	Items   []QuoteItemInput
}

// QuoteItemInput is one requested line.
type QuoteItemInput struct {
	Description string
	UnitPrice   float64
	Quantity    int
}

// Quote is a computed pricing snapshot. Amounts are raw pipeline figures
// except Total, which is rounded to two decimals.
type Quote struct {
	ID         uuid.UUID
	Currency   enums.Currency
	Symbol     string
	Subtotal   float64
	Discount   float64
	Tax        float64
	Total      float64
	Lines      []QuoteLine
	ComputedAt time.Time
}

// QuoteLine echoes a priced request line.
type QuoteLine struct {
	Description  string
	UnitPrice    float64
	Quantity     int
	LineSubtotal float64
}
