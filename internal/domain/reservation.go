package domain

import (
	"context"
	"time"
)

type SeatReservation struct {
	ID        int
	AccountID int
	SeatCount int
	CreatedAt time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *SeatReservation) error
	GetById(ctx context.Context, id int) (*SeatReservation, error)
	GetByAccountId(ctx context.Context, accountID int) ([]SeatReservation, error)
}
