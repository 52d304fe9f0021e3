package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeRejected  = "rejected"
	outcomeConflict  = "conflict"
	outcomeFailed    = "failed"
)

func newPurchaseCounter() (metric.Int64Counter, error) {
	return otel.Meter("github.com/metinatakli/cinema-tickets/internal/app").Int64Counter(
		"ticket.purchases",
		metric.WithDescription("Ticket purchase attempts by outcome"),
		metric.WithUnit("{purchase}"),
	)
}

func (app *Application) recordPurchase(ctx context.Context, outcome string) {
	app.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (app *Application) PurchaseTicketsHandler(w http.ResponseWriter, r *http.Request) {
	var input api.PurchaseTicketsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Tickets == nil {
		app.recordPurchase(r.Context(), outcomeRejected)
		app.invalidPurchaseResponse(w, r, domain.ErrNoTicketsRequested)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	requests, err := toTicketTypeRequests(input.Tickets)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	accountID := parseAccountID(input.AccountId)

	// an invalid account ID is rejected by the ticket service, so there is nothing to lock
	if app.redis != nil && accountID > 0 {
		release, err := app.acquirePurchaseLock(r.Context(), accountID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrPurchaseInProgress):
				app.recordPurchase(r.Context(), outcomeConflict)
				app.editConflictResponseWithErr(w, r, err)
			default:
				app.recordPurchase(r.Context(), outcomeFailed)
				app.serverErrorResponse(w, r, err)
			}

			return
		}
		defer release()
	}

	err = app.tickets.PurchaseTickets(r.Context(), accountID, requests...)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPurchase):
			app.recordPurchase(r.Context(), outcomeRejected)
			app.invalidPurchaseResponse(w, r, err)
		default:
			app.recordPurchase(r.Context(), outcomeFailed)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.recordPurchase(r.Context(), outcomeSucceeded)
	w.WriteHeader(http.StatusNoContent)
}

func toTicketTypeRequests(tickets []api.TicketRequest) ([]domain.TicketTypeRequest, error) {
	requests := make([]domain.TicketTypeRequest, 0, len(tickets))

	for _, t := range tickets {
		ticketType, err := domain.ParseTicketType(string(t.Type))
		if err != nil {
			return nil, err
		}

		req, err := domain.NewTicketTypeRequest(ticketType, int(t.Count))
		if err != nil {
			return nil, err
		}

		requests = append(requests, req)
	}

	return requests, nil
}

// parseAccountID accepts the account ID as a JSON integer or as a string holding
// one. Anything else yields 0, which the ticket service rejects.
func parseAccountID(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var id int
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}

	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return id
}
