package domain

import "context"

// PurchaseTotals holds the quantities derived from a purchase's line items.
type PurchaseTotals struct {
	Tickets  int
	Adults   int
	Children int
	Infants  int
	Seats    int
	Amount   int
}

// SumTickets tallies the requested tickets per category. Summation stops once
// the running total passes MaxTicketsPerPurchase, so the returned Tickets value
// is only exact up to that bound.
func SumTickets(requests []TicketTypeRequest) PurchaseTotals {
	var totals PurchaseTotals

	for _, req := range requests {
		if totals.Tickets > MaxTicketsPerPurchase || req.Count() > MaxTicketsPerPurchase {
			totals.Tickets = MaxTicketsPerPurchase + 1
			break
		}

		switch req.Type() {
		case TicketTypeAdult:
			totals.Adults += req.Count()
		case TicketTypeChild:
			totals.Children += req.Count()
		case TicketTypeInfant:
			totals.Infants += req.Count()
		default:
			continue
		}

		totals.Tickets += req.Count()
	}

	// infants sit on an adult's lap
	totals.Seats = totals.Adults + totals.Children
	totals.Amount = totals.Adults*TicketTypeAdult.Price() +
		totals.Children*TicketTypeChild.Price() +
		totals.Infants*TicketTypeInfant.Price()

	return totals
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int, seatCount int) error
}

type PaymentService interface {
	MakePayment(ctx context.Context, accountID int, amount int) error
}
