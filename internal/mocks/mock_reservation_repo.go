package mocks

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

type MockReservationRepo struct {
	CreateFunc         func(ctx context.Context, reservation *domain.SeatReservation) error
	GetByIdFunc        func(ctx context.Context, id int) (*domain.SeatReservation, error)
	GetByAccountIdFunc func(ctx context.Context, accountID int) ([]domain.SeatReservation, error)
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.SeatReservation) error {
	return m.CreateFunc(ctx, reservation)
}

func (m *MockReservationRepo) GetById(ctx context.Context, id int) (*domain.SeatReservation, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockReservationRepo) GetByAccountId(ctx context.Context, accountID int) ([]domain.SeatReservation, error) {
	return m.GetByAccountIdFunc(ctx, accountID)
}
