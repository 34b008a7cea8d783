package quotesdto

// ComputeQuoteRequest captures one pricing request.
type ComputeQuoteRequest struct {
	Currency string             `json:"currency" validate:"required"`
	Discount *DiscountRequest   `json:"discount,omitempty"`
	Items    []QuoteItemRequest `json:"items"`
}

// DiscountRequest selects the discount policy applied to the quote's
// subtotal. Only the field matching Kind is read.
type DiscountRequest struct {
	Kind    string  `json:"kind" validate:"required"`
	Percent float64 `json:"percent,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// QuoteItemRequest describes a requested price/quantity tuple.
type QuoteItemRequest struct {
	Description string  `json:"description,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}
