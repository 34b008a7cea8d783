package quotesdto

import (
	"time"

	"github.com/google/uuid"
)

// QuoteResponse is the computed quote exposed through the API. Amounts are
// rendered as fixed two-decimal strings so clients never re-round floats.
type QuoteResponse struct {
	ID         uuid.UUID           `json:"id"`
	Currency   string              `json:"currency"`
	Symbol     string              `json:"symbol"`
	Subtotal   string              `json:"subtotal"`
	Discount   string              `json:"discount"`
	Tax        string              `json:"tax"`
	Total      string              `json:"total"`
	TotalLine  string              `json:"total_line"`
	Lines      []QuoteLineResponse `json:"lines"`
	ComputedAt time.Time           `json:"computed_at"`
}

// QuoteLineResponse echoes one priced request line.
type QuoteLineResponse struct {
	Description  string `json:"description,omitempty"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineSubtotal string `json:"line_subtotal"`
}
