package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/invoicing-backend/internal/pricing"
	"github.com/angelmondragon/invoicing-backend/pkg/config"
	"github.com/angelmondragon/invoicing-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invoicing-backend/pkg/errors"
	"github.com/angelmondragon/invoicing-backend/pkg/metrics"
)

// Service computes priced quotes from raw request input.
type Service interface {
	ComputeQuote(ctx context.Context, input QuoteInput) (*Quote, error)
}

type service struct {
	maxItems     int
	quoteMetrics *metrics.QuoteMetrics
}

// NewService builds the quote service. Metrics may be nil.
func NewService(cfg config.QuotesConfig, quoteMetrics *metrics.QuoteMetrics) (Service, error) {
	if cfg.MaxItems <= 0 {
		return nil, fmt.Errorf("quotes: max items must be positive")
	}
	return &service{
		maxItems:     cfg.MaxItems,
		quoteMetrics: quoteMetrics,
	}, nil
}

func (s *service) ComputeQuote(ctx context.Context, input QuoteInput) (*Quote, error) {
	quote, err := s.computeQuote(input)
	if err != nil {
		s.quoteMetrics.IncFailed(string(pkgerrors.As(err).Code()))
		return nil, err
	}
	s.quoteMetrics.IncComputed(quote.Currency.String())
	return quote, nil
}

func (s *service) computeQuote(input QuoteInput) (*Quote, error) {
	currency, err := enums.ParseCurrency(input.Currency)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidArgument, err, "unsupported currency").
			WithDetails(map[string]any{"currency": input.Currency})
	}
	symbol, err := currency.Symbol()
	if err != nil {
		return nil, err
	}

	if len(input.Items) > s.maxItems {
		return nil, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
			"quote exceeds the limit of %d items", s.maxItems)
	}

	// A nil items slice stays nil so the engine can tell "no container"
	// apart from "no lines".
	var items []pricing.LineItem
	if input.Items != nil {
		items = make([]pricing.LineItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, pricing.LineItem{
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}
	}

	policy, err := buildPolicy(input)
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.ComputeBreakdown(items, policy)
	if err != nil {
		return nil, err
	}

	lines := make([]QuoteLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, QuoteLine{
			Description:  item.Description,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			LineSubtotal: item.UnitPrice * float64(item.Quantity),
		})
	}

	return &Quote{
		ID:         uuid.New(),
		Currency:   currency,
		Symbol:     symbol,
		Subtotal:   breakdown.Subtotal,
		Discount:   breakdown.Discount,
		Tax:        breakdown.Tax,
		Total:      breakdown.Total,
		Lines:      lines,
		ComputedAt: time.Now().UTC(),
	}, nil
}

func buildPolicy(input QuoteInput) (pricing.DiscountPolicy, error) {
	if input.DiscountKind == "" {
		return nil, nil
	}
	kind, err := enums.ParseDiscountKind(input.DiscountKind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidArgument, err, "unsupported discount kind").
			WithDetails(map[string]any{"discount_kind": input.DiscountKind})
	}
	switch kind {
	case enums.DiscountKindPercentage:
		policy, err := pricing.NewPercentageDiscountPolicy(input.Percent)
		if err != nil {
			return nil, err
		}
		return policy, nil
	case enums.DiscountKindFixed:
		policy, err := pricing.NewFixedAmountDiscountPolicy(input.Amount)
		if err != nil {
			return nil, err
		}
		return policy, nil
	default:
		return nil, pkgerrors.Newf(pkgerrors.CodeInvalidArgument,
			"unsupported discount kind %q", input.DiscountKind)
	}
}
