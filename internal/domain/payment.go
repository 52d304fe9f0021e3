package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCompleted PaymentStatus = "completed"
)

const PaymentCurrency = "GBP"

type Payment struct {
	ID                int
	AccountID         int
	ProviderReference string
	Amount            decimal.Decimal
	Currency          string
	Status            PaymentStatus
	CreatedAt         time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id int) (*Payment, error)
}
