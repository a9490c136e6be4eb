package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create persists a reservation and its ticket batch atomically. Seat bounds
// are re-checked against the hall dimensions inside the transaction even
// though the API layer already validated them, so a direct caller of this
// repository gets the same guarantees. Seat collisions are left entirely to
// the unique index on (performance_id, seat_row, seat_number): a pre-check
// would race with concurrent allocations, the constraint cannot.
func (p *PostgresReservationRepository) Create(
	ctx context.Context,
	reservation *domain.Reservation,
	tickets []domain.TicketRequest) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		halls := make(map[int]domain.TheatreHall)
		reservation.Tickets = make([]domain.Ticket, 0, len(tickets))

		for _, req := range tickets {
			hall, ok := halls[req.PerformanceID]
			if !ok {
				hall, err = p.hallForPerformance(ctx, tx, req.PerformanceID)
				if err != nil {
					return err
				}

				halls[req.PerformanceID] = hall
			}

			err = domain.ValidateSeat(req.Row, req.Seat, hall)
			if err != nil {
				return err
			}

			ticket := domain.Ticket{
				Row:           req.Row,
				Seat:          req.Seat,
				PerformanceID: req.PerformanceID,
				ReservationID: reservation.ID,
			}

			query = `
				INSERT INTO tickets (seat_row, seat_number, performance_id, reservation_id)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`

			err = tx.QueryRow(ctx, query, ticket.Row, ticket.Seat, ticket.PerformanceID, ticket.ReservationID).
				Scan(&ticket.ID)

			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("row %d seat %d: %w", req.Row, req.Seat, domain.ErrSeatAlreadyTaken)
				}

				return err
			}

			reservation.Tickets = append(reservation.Tickets, ticket)
		}

		return nil
	})
}

func (p *PostgresReservationRepository) hallForPerformance(
	ctx context.Context,
	tx pgx.Tx,
	performanceID int) (domain.TheatreHall, error) {

	query := `
		SELECT h.id, h.name, h.seat_rows, h.seats_in_row
		FROM theatre_halls h
		JOIN performances p ON p.theatre_hall_id = h.id
		WHERE p.id = $1
	`

	var hall domain.TheatreHall

	err := tx.QueryRow(ctx, query, performanceID).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hall, fmt.Errorf("performance %d: %w", performanceID, domain.ErrRecordNotFound)
		}

		return hall, err
	}

	return hall, nil
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.ReservationSummary, 0)
	reservationIDs := make([]int, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.ReservationSummary

		err = rows.Scan(&totalRecords, &reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
		reservationIDs = append(reservationIDs, reservation.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	ticketsByReservation, err := p.retrieveTickets(ctx, reservationIDs)
	if err != nil {
		return nil, nil, err
	}

	for i := range reservations {
		reservations[i].Tickets = ticketsByReservation[reservations[i].ID]
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetByIdAndUserId(
	ctx context.Context,
	id, userID int) (*domain.ReservationSummary, error) {

	query := `
		SELECT id, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	var reservation domain.ReservationSummary

	err := p.db.QueryRow(ctx, query, id, userID).Scan(&reservation.ID, &reservation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	ticketsByReservation, err := p.retrieveTickets(ctx, []int{reservation.ID})
	if err != nil {
		return nil, err
	}

	reservation.Tickets = ticketsByReservation[reservation.ID]

	return &reservation, nil
}

// Delete removes the reservation and, through the cascade on tickets, every
// ticket it owns.
func (p *PostgresReservationRepository) Delete(ctx context.Context, id, userID int) error {
	query := `
		DELETE FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	result, err := p.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresReservationRepository) retrieveTickets(
	ctx context.Context,
	reservationIDs []int) (map[int][]domain.TicketSummary, error) {

	ticketsByReservation := make(map[int][]domain.TicketSummary)

	if len(reservationIDs) == 0 {
		return ticketsByReservation, nil
	}

	query := `
		SELECT t.reservation_id, t.id, t.seat_row, t.seat_number, t.performance_id,
			p.show_time, pl.title, h.name
		FROM tickets t
		JOIN performances p ON t.performance_id = p.id
		JOIN plays pl ON p.play_id = pl.id
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, reservationIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID int
		var ticket domain.TicketSummary

		err = rows.Scan(
			&reservationID,
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ShowTime,
			&ticket.PlayTitle,
			&ticket.TheatreHallName,
		)

		if err != nil {
			return nil, err
		}

		ticketsByReservation[reservationID] = append(ticketsByReservation[reservationID], ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ticketsByReservation, nil
}
