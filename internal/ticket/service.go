// Package ticket validates cinema ticket purchases and fulfils them through the
// seat reservation and payment services.
package ticket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
)

type Service struct {
	seats    domain.SeatReservationService
	payments domain.PaymentService
	logger   *slog.Logger
}

func NewService(
	seats domain.SeatReservationService,
	payments domain.PaymentService,
	logger *slog.Logger) *Service {

	return &Service{
		seats:    seats,
		payments: payments,
		logger:   logger,
	}
}

// PurchaseTickets reserves the seats and takes the payment for the requested
// tickets. If any purchase rule is broken it returns an *domain.InvalidPurchaseError
// and neither the seat reservation nor the payment service is called. Errors from
// either service are returned as they are.
func (s *Service) PurchaseTickets(ctx context.Context, accountID int, requests ...domain.TicketTypeRequest) error {
	totals, err := Validate(accountID, requests...)
	if err != nil {
		return err
	}

	s.logger.Info(
		fmt.Sprintf("Reserving %d seat(s) with account ID: %d", totals.Seats, accountID),
		"account_id", accountID,
		"seat_count", totals.Seats,
	)

	err = s.seats.ReserveSeat(ctx, accountID, totals.Seats)
	if err != nil {
		return err
	}

	s.logger.Info(
		fmt.Sprintf("Making payment of %s with account ID: %d", FormatAmount(totals.Amount), accountID),
		"account_id", accountID,
		"amount", totals.Amount,
	)

	err = s.payments.MakePayment(ctx, accountID, totals.Amount)
	if err != nil {
		return err
	}

	return nil
}

// Validate applies the purchase rules in order and returns the derived totals.
// The first broken rule decides the returned error.
func Validate(accountID int, requests ...domain.TicketTypeRequest) (domain.PurchaseTotals, error) {
	if accountID < 1 {
		return domain.PurchaseTotals{}, domain.ErrInvalidAccountID
	}

	totals := domain.SumTickets(requests)

	switch {
	case totals.Tickets == 0:
		return domain.PurchaseTotals{}, domain.ErrNoTicketsRequested
	case totals.Tickets > domain.MaxTicketsPerPurchase:
		return domain.PurchaseTotals{}, domain.ErrTooManyTickets
	case (totals.Children > 0 || totals.Infants > 0) && totals.Adults == 0:
		return domain.PurchaseTotals{}, domain.ErrNoAdultTicket
	case totals.Infants > totals.Adults:
		return domain.PurchaseTotals{}, domain.ErrMoreInfantsThanAdults
	}

	return totals, nil
}

// FormatAmount renders a whole-pound amount as a sterling string, e.g. £20.00.
func FormatAmount(amount int) string {
	return "£" + decimal.NewFromInt(int64(amount)).StringFixed(2)
}
