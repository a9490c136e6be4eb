package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `
		INSERT INTO performances (play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.PlayID,
		performance.TheatreHallID,
		performance.ShowTime).Scan(&performance.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

// GetAll lists performances newest first. Availability is recomputed on
// every call from the live ticket count; it is intentionally never cached.
func (p *PostgresPerformanceRepository) GetAll(
	ctx context.Context,
	filters domain.PerformanceFilters) ([]domain.PerformanceSummary, error) {

	query := `
		SELECT p.id, p.show_time, pl.title, pl.image_url, h.name,
			h.seat_rows * h.seats_in_row AS capacity,
			h.seat_rows * h.seats_in_row - COUNT(t.id) AS tickets_available
		FROM performances p
		JOIN plays pl ON p.play_id = pl.id
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		LEFT JOIN tickets t ON t.performance_id = p.id
		WHERE ($1::date IS NULL OR (p.show_time AT TIME ZONE 'UTC')::date = $1)
			AND ($2::bigint IS NULL OR p.play_id = $2)
		GROUP BY p.id, p.show_time, pl.title, pl.image_url, h.name, h.seat_rows, h.seats_in_row
		ORDER BY p.show_time DESC, p.id DESC
	`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.PlayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := make([]domain.PerformanceSummary, 0)

	for rows.Next() {
		var performance domain.PerformanceSummary

		err = rows.Scan(
			&performance.ID,
			&performance.ShowTime,
			&performance.PlayTitle,
			&performance.PlayImageURL,
			&performance.HallName,
			&performance.HallCapacity,
			&performance.TicketsAvailable,
		)

		if err != nil {
			return nil, err
		}

		// The seat-uniqueness and range invariants make a negative value
		// impossible; if it shows up anyway, something elsewhere corrupted
		// the tickets table and we refuse to report nonsense.
		if performance.TicketsAvailable < 0 {
			return nil, fmt.Errorf("performance %d: %w", performance.ID, domain.ErrCapacityExceeded)
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	query := `
		SELECT p.id, p.show_time,
			pl.id, pl.title, pl.description, pl.image_url,
			h.id, h.name, h.seat_rows, h.seats_in_row
		FROM performances p
		JOIN plays pl ON p.play_id = pl.id
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		WHERE p.id = $1
	`

	var detail domain.PerformanceDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.Play.ID,
		&detail.Play.Title,
		&detail.Play.Description,
		&detail.Play.ImageURL,
		&detail.Hall.ID,
		&detail.Hall.Name,
		&detail.Hall.Rows,
		&detail.Hall.SeatsInRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	takenSeats, err := p.retrieveTakenSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	props, err := p.retrieveProps(ctx, id)
	if err != nil {
		return nil, err
	}

	detail.TakenSeats = takenSeats
	detail.Props = props

	return &detail, nil
}

// Update applies scalar changes and replaces the prop set in one
// transaction. A failure at any step, including an unknown prop insert,
// rolls back the scalar changes as well.
func (p *PostgresPerformanceRepository) Update(
	ctx context.Context,
	performance *domain.Performance,
	propNames []string) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE performances
			SET play_id = $1, theatre_hall_id = $2, show_time = $3
			WHERE id = $4
		`

		result, err := tx.Exec(
			ctx,
			query,
			performance.PlayID,
			performance.TheatreHallID,
			performance.ShowTime,
			performance.ID)

		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if result.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM performance_props WHERE performance_id = $1`, performance.ID)
		if err != nil {
			return err
		}

		performance.Props = performance.Props[:0]

		for _, name := range propNames {
			prop := domain.Prop{Name: name}

			// get-or-create by name; the no-op update lets RETURNING yield
			// the id of an existing row
			query = `
				INSERT INTO props (name)
				VALUES ($1)
				ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				RETURNING id
			`

			err = tx.QueryRow(ctx, query, name).Scan(&prop.ID)
			if err != nil {
				return err
			}

			query = `
				INSERT INTO performance_props (performance_id, prop_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`

			_, err = tx.Exec(ctx, query, performance.ID, prop.ID)
			if err != nil {
				return err
			}

			performance.Props = append(performance.Props, prop)
		}

		return nil
	})
}

func (p *PostgresPerformanceRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPerformanceRepository) retrieveTakenSeats(
	ctx context.Context,
	performanceID int) ([]domain.SeatPosition, error) {

	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, performanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.SeatPosition, 0)

	for rows.Next() {
		var seat domain.SeatPosition

		err = rows.Scan(&seat.Row, &seat.Seat)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresPerformanceRepository) retrieveProps(
	ctx context.Context,
	performanceID int) ([]domain.Prop, error) {

	query := `
		SELECT pr.id, pr.name
		FROM props pr
		JOIN performance_props pp ON pr.id = pp.prop_id AND pp.performance_id = $1
		ORDER BY pr.name
	`

	rows, err := p.db.Query(ctx, query, performanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := make([]domain.Prop, 0)

	for rows.Next() {
		var prop domain.Prop

		err = rows.Scan(&prop.ID, &prop.Name)
		if err != nil {
			return nil, err
		}

		props = append(props, prop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return props, nil
}
