package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTicketType  = errors.New("ticket type must be one of ADULT, CHILD or INFANT")
	ErrInvalidTicketCount = errors.New("ticket count must be zero or greater")
)

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

const (
	AdultTicketPrice  = 20
	ChildTicketPrice  = 10
	InfantTicketPrice = 0

	// MaxTicketsPerPurchase is the upper bound on the summed count of all line items.
	MaxTicketsPerPurchase = 20
)

func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTicketType, s)
	}

	return t, nil
}

func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return true
	default:
		return false
	}
}

func (t TicketType) Price() int {
	switch t {
	case TicketTypeAdult:
		return AdultTicketPrice
	case TicketTypeChild:
		return ChildTicketPrice
	default:
		return InfantTicketPrice
	}
}

func (t TicketType) String() string {
	return string(t)
}

// TicketTypeRequest is a single purchase line item. It can only be built via
// NewTicketTypeRequest and is never mutated afterwards.
type TicketTypeRequest struct {
	ticketType TicketType
	count      int
}

func NewTicketTypeRequest(ticketType TicketType, count int) (TicketTypeRequest, error) {
	if !ticketType.Valid() {
		return TicketTypeRequest{}, ErrInvalidTicketType
	}

	if count < 0 {
		return TicketTypeRequest{}, ErrInvalidTicketCount
	}

	return TicketTypeRequest{ticketType: ticketType, count: count}, nil
}

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) Count() int {
	return r.count
}
