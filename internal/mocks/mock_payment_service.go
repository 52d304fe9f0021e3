package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int, amount int) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}
