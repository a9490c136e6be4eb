package repository

import (
	"context"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresGenreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresGenreRepository(db *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{
		db: db,
	}
}

func (p *PostgresGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	query := `
		INSERT INTO genres (name)
		VALUES ($1)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGenreAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresGenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	query := `
		SELECT id, name
		FROM genres
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)

	for rows.Next() {
		var genre domain.Genre

		err = rows.Scan(&genre.ID, &genre.Name)
		if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}
