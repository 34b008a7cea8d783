package quotes

import (
	quotesdto "github.com/angelmondragon/invoicing-backend/api/controllers/quotes/dto"
	"github.com/angelmondragon/invoicing-backend/api/validators"
	"github.com/angelmondragon/invoicing-backend/internal/quotes"
)

func toQuoteInput(payload quotesdto.ComputeQuoteRequest) quotes.QuoteInput {
	input := quotes.QuoteInput{Currency: payload.Currency}

	if payload.Discount != nil {
		input.DiscountKind = payload.Discount.Kind
		input.Percent = payload.Discount.Percent
		input.Amount = payload.Discount.Amount
	}

	// A request without an items field stays nil so the pricing engine can
	// tell it apart from an explicitly empty list.
	if payload.Items != nil {
		items := make([]quotes.QuoteItemInput, 0, len(payload.Items))
		for _, item := range payload.Items {
			items = append(items, quotes.QuoteItemInput{
				Description: validators.SanitizeString(item.Description, 200),
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
			})
		}
		input.Items = items
	}

	return input
}
