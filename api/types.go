// Package api holds the request and response bodies of the HTTP API.
package api

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type TicketType string

const (
	ADULT  TicketType = "ADULT"
	CHILD  TicketType = "CHILD"
	INFANT TicketType = "INFANT"
)

type TicketRequest struct {
	Type  TicketType  `json:"type" validate:"required,ticket_type"`
	Count TicketCount `json:"count" validate:"min=0"`
}

// TicketCount is the number of tickets of one type. Clients send it either as a
// JSON integer or as a string holding one.
type TicketCount int

func (c *TicketCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = TicketCount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			*c = TicketCount(n)
			return nil
		}
	}

	return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(n)}
}

// PurchaseTicketsRequest is the body of POST /tickets/purchase. AccountId is kept
// raw because clients send it either as a number or as a numeric string.
type PurchaseTicketsRequest struct {
	AccountId json.RawMessage `json:"accountId"`
	Tickets   []TicketRequest `json:"tickets" validate:"dive"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	Kind      *string   `json:"kind,omitempty"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
