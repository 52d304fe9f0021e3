package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var minorUnitsPerPound = decimal.NewFromInt(100)

type StripePaymentService struct {
	paymentMethod string
	repo          domain.PaymentRepository
	logger        *slog.Logger

	createIntent      func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	newIdempotencyKey func() string
}

// NewStripePaymentService charges purchases through confirmed Stripe payment
// intents paid with the given payment method. stripe.Key must be set by the caller.
func NewStripePaymentService(
	paymentMethod string,
	repo domain.PaymentRepository,
	logger *slog.Logger) *StripePaymentService {

	return &StripePaymentService{
		paymentMethod:     paymentMethod,
		repo:              repo,
		logger:            logger,
		createIntent:      paymentintent.New,
		newIdempotencyKey: uuid.NewString,
	}
}

func (s *StripePaymentService) MakePayment(ctx context.Context, accountID int, amount int) error {
	pounds := decimal.NewFromInt(int64(amount))

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(pounds.Mul(minorUnitsPerPound).IntPart()),
		Currency:      stripe.String(string(stripe.CurrencyGBP)),
		PaymentMethod: stripe.String(s.paymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("account_id", strconv.Itoa(accountID))
	params.SetIdempotencyKey(s.newIdempotencyKey())

	intent, err := s.createIntent(params)
	if err != nil {
		return fmt.Errorf("stripe payment intent: %w", err)
	}

	payment := domain.Payment{
		AccountID:         accountID,
		ProviderReference: intent.ID,
		Amount:            pounds,
		Currency:          domain.PaymentCurrency,
		Status:            domain.PaymentStatusCompleted,
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		payment.Status = domain.PaymentStatusFailed
	}

	err = s.repo.Create(ctx, &payment)
	if err != nil {
		s.logger.Error("failed to record payment", "provider_reference", intent.ID, "account_id", accountID, "error", err)
		return err
	}

	if payment.Status != domain.PaymentStatusCompleted {
		return fmt.Errorf("%w: payment intent %s is %s", domain.ErrPaymentNotCompleted, intent.ID, intent.Status)
	}

	return nil
}
