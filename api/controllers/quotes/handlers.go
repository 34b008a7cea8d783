package quotes

import (
	"net/http"

	quotesdto "github.com/angelmondragon/invoicing-backend/api/controllers/quotes/dto"
	"github.com/angelmondragon/invoicing-backend/api/responses"
	"github.com/angelmondragon/invoicing-backend/api/validators"
	quotesvc "github.com/angelmondragon/invoicing-backend/internal/quotes"
	pkgerrors "github.com/angelmondragon/invoicing-backend/pkg/errors"
	"github.com/angelmondragon/invoicing-backend/pkg/logger"
)

// QuoteCreate prices one request and returns the computed snapshot.
func QuoteCreate(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload quotesdto.ComputeQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.ComputeQuote(r.Context(), toQuoteInput(payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteResponse(quote))
	}
}
