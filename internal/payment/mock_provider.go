package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
)

// MockPaymentService accepts every payment without contacting a provider. It is
// used when no Stripe key is configured.
type MockPaymentService struct {
	repo   domain.PaymentRepository
	logger *slog.Logger
}

func NewMockPaymentService(repo domain.PaymentRepository, logger *slog.Logger) *MockPaymentService {
	return &MockPaymentService{
		repo:   repo,
		logger: logger,
	}
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int, amount int) error {
	payment := domain.Payment{
		AccountID:         accountID,
		ProviderReference: "mock_" + uuid.NewString(),
		Amount:            decimal.NewFromInt(int64(amount)),
		Currency:          domain.PaymentCurrency,
		Status:            domain.PaymentStatusCompleted,
	}

	err := m.repo.Create(ctx, &payment)
	if err != nil {
		return err
	}

	m.logger.Warn("payment accepted by mock provider", "provider_reference", payment.ProviderReference)

	return nil
}
