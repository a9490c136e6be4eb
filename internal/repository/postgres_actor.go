package repository

import (
	"context"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresActorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		db: db,
	}
}

func (p *PostgresActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `
		INSERT INTO actors (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)
}

func (p *PostgresActorRepository) GetAll(ctx context.Context) ([]domain.Actor, error) {
	query := `
		SELECT id, first_name, last_name
		FROM actors
		ORDER BY last_name, first_name
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)

	for rows.Next() {
		var actor domain.Actor

		err = rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}
