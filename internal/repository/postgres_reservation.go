package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.SeatReservation) error {
	query := `INSERT INTO seat_reservations (account_id, seat_count)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx, query, reservation.AccountID, reservation.SeatCount).
		Scan(&reservation.ID, &reservation.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return domain.ErrInvalidReservation
		}

		return err
	}

	return nil
}

func (p *PostgresReservationRepository) GetById(ctx context.Context, id int) (*domain.SeatReservation, error) {
	query := `SELECT id, account_id, seat_count, created_at
		FROM seat_reservations
		WHERE id = $1`

	var reservation domain.SeatReservation

	err := p.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.AccountID,
		&reservation.SeatCount,
		&reservation.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &reservation, nil
}

func (p *PostgresReservationRepository) GetByAccountId(
	ctx context.Context,
	accountID int) ([]domain.SeatReservation, error) {

	query := `SELECT id, account_id, seat_count, created_at
		FROM seat_reservations
		WHERE account_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.SeatReservation

	for rows.Next() {
		var reservation domain.SeatReservation

		err := rows.Scan(
			&reservation.ID,
			&reservation.AccountID,
			&reservation.SeatCount,
			&reservation.CreatedAt)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
