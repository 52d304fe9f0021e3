// Package reservation implements the seat booking side of a ticket purchase
// on top of a ReservationRepository.
package reservation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

type Service struct {
	repo   domain.ReservationRepository
	logger *slog.Logger
}

func NewService(repo domain.ReservationRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ReserveSeat stores a reservation of seatCount seats for the account. A zero
// seat count is stored as is.
func (s *Service) ReserveSeat(ctx context.Context, accountID int, seatCount int) error {
	reservation := domain.SeatReservation{
		AccountID: accountID,
		SeatCount: seatCount,
	}

	err := s.repo.Create(ctx, &reservation)
	if err != nil {
		return fmt.Errorf("seat reservation for account %d: %w", accountID, err)
	}

	s.logger.Debug("seat reservation stored", "reservation_id", reservation.ID, "account_id", accountID)

	return nil
}
