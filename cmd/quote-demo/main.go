package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/angelmondragon/invoicing-backend/internal/quotes"
	"github.com/angelmondragon/invoicing-backend/pkg/config"
)

// quote-demo prices a small fixed order and prints the result, useful for
// eyeballing the pipeline without standing up the API.
func main() {
	currency := flag.String("currency", "USD", "quote currency: USD|EUR")
	percent := flag.Float64("percent", 0.10, "percentage discount applied to the subtotal")
	flag.Parse()

	svc, err := quotes.NewService(config.QuotesConfig{MaxItems: 100}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build quote service: %v\n", err)
		os.Exit(1)
	}

	quote, err := svc.ComputeQuote(context.Background(), quotes.QuoteInput{
		Currency:     *currency,
		DiscountKind: "percentage",
		Percent:      *percent,
		Items: []quotes.QuoteItemInput{
			{Description: "Standard license", UnitPrice: 10.0, Quantity: 2},
			{Description: "Support add-on", UnitPrice: 4.5, Quantity: 1},
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compute quote: %v\n", err)
		os.Exit(1)
	}

	for _, line := range quote.Lines {
		fmt.Printf("%d x %s @ %s%s\n", line.Quantity, line.Description, quote.Symbol, quotes.FormatAmount(line.UnitPrice))
	}
	fmt.Println(quote.TotalLine())
}
