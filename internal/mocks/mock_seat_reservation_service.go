package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSeatReservationService struct {
	mock.Mock
}

func (m *MockSeatReservationService) ReserveSeat(ctx context.Context, accountID int, seatCount int) error {
	args := m.Called(ctx, accountID, seatCount)
	return args.Error(0)
}
