package quotes

import (
	quotesdto "github.com/angelmondragon/invoicing-backend/api/controllers/quotes/dto"
	"github.com/angelmondragon/invoicing-backend/internal/quotes"
)

func newQuoteResponse(quote *quotes.Quote) quotesdto.QuoteResponse {
	lines := make([]quotesdto.QuoteLineResponse, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, quotesdto.QuoteLineResponse{
			Description:  line.Description,
			UnitPrice:    quotes.FormatAmount(line.UnitPrice),
			Quantity:     line.Quantity,
			LineSubtotal: quotes.FormatAmount(line.LineSubtotal),
		})
	}

	return quotesdto.QuoteResponse{
		ID:         quote.ID,
		Currency:   quote.Currency.String(),
		Symbol:     quote.Symbol,
		Subtotal:   quotes.FormatAmount(quote.Subtotal),
		Discount:   quotes.FormatAmount(quote.Discount),
		Tax:        quotes.FormatAmount(quote.Tax),
		Total:      quotes.FormatAmount(quote.Total),
		TotalLine:  quote.TotalLine(),
		Lines:      lines,
		ComputedAt: quote.ComputedAt,
	}
}
