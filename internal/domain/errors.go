package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidReservation  = errors.New("seat reservation rejected by the booking store")
	ErrPaymentNotCompleted = errors.New("payment was not completed")
	ErrPurchaseInProgress  = errors.New("another purchase is already in progress for this account")
)

// ErrInvalidPurchase is the category shared by every business rule violation.
// Use errors.Is to detect it and errors.As with *InvalidPurchaseError to read the kind.
var ErrInvalidPurchase = errors.New("invalid purchase")

type PurchaseErrorKind string

const (
	KindInvalidAccountID      PurchaseErrorKind = "INVALID_ACCOUNT_ID"
	KindNoTicketsRequested    PurchaseErrorKind = "NO_TICKETS_REQUESTED"
	KindTooManyTickets        PurchaseErrorKind = "TOO_MANY_TICKETS"
	KindNoAdultTicket         PurchaseErrorKind = "NO_ADULT_TICKET"
	KindMoreInfantsThanAdults PurchaseErrorKind = "MORE_INFANTS_THAN_ADULTS"
)

type InvalidPurchaseError struct {
	Kind    PurchaseErrorKind
	Message string
}

func (e *InvalidPurchaseError) Error() string {
	return e.Message
}

func (e *InvalidPurchaseError) Unwrap() error {
	return ErrInvalidPurchase
}

var (
	ErrInvalidAccountID = &InvalidPurchaseError{
		Kind:    KindInvalidAccountID,
		Message: "account ID must be greater than zero",
	}
	ErrNoTicketsRequested = &InvalidPurchaseError{
		Kind:    KindNoTicketsRequested,
		Message: "at least one ticket must be requested",
	}
	ErrTooManyTickets = &InvalidPurchaseError{
		Kind:    KindTooManyTickets,
		Message: fmt.Sprintf("no more than %d tickets can be purchased at a time", MaxTicketsPerPurchase),
	}
	ErrNoAdultTicket = &InvalidPurchaseError{
		Kind:    KindNoAdultTicket,
		Message: "child and infant tickets cannot be purchased without an adult ticket",
	}
	ErrMoreInfantsThanAdults = &InvalidPurchaseError{
		Kind:    KindMoreInfantsThanAdults,
		Message: "infant tickets cannot outnumber adult tickets",
	}
)
