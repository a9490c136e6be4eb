package repository

import (
	"context"
	"errors"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

func (p *PostgresPlayRepository) Create(
	ctx context.Context,
	play *domain.Play,
	genreIDs, actorIDs []int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO plays (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, play.Title, play.Description).Scan(&play.ID)
		if err != nil {
			return err
		}

		for _, genreID := range genreIDs {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO play_genres (play_id, genre_id) VALUES ($1, $2)`,
				play.ID, genreID)

			if err != nil {
				if isForeignKeyViolation(err) {
					return domain.ErrRecordNotFound
				}

				return err
			}
		}

		for _, actorID := range actorIDs {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO play_actors (play_id, actor_id) VALUES ($1, $2)`,
				play.ID, actorID)

			if err != nil {
				if isForeignKeyViolation(err) {
					return domain.ErrRecordNotFound
				}

				return err
			}
		}

		return nil
	})
}

func (p *PostgresPlayRepository) GetAll(
	ctx context.Context,
	filters domain.PlayFilters) ([]domain.Play, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, title, description, image_url
		FROM plays
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
			AND (cardinality($2::bigint[]) = 0 OR EXISTS (
				SELECT 1 FROM play_genres pg
				WHERE pg.play_id = plays.id AND pg.genre_id = ANY($2)
			))
			AND (cardinality($3::bigint[]) = 0 OR EXISTS (
				SELECT 1 FROM play_actors pa
				WHERE pa.play_id = plays.id AND pa.actor_id = ANY($3)
			))
		ORDER BY title, id
		LIMIT $4 OFFSET $5
	`

	rows, err := p.db.Query(
		ctx,
		query,
		filters.Title,
		filters.GenreIDs,
		filters.ActorIDs,
		filters.Limit(),
		filters.Offset())

	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	plays := make([]domain.Play, 0)
	playIDs := make([]int, 0)
	totalRecords := 0

	for rows.Next() {
		var play domain.Play

		err = rows.Scan(&totalRecords, &play.ID, &play.Title, &play.Description, &play.ImageURL)
		if err != nil {
			return nil, nil, err
		}

		plays = append(plays, play)
		playIDs = append(playIDs, play.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = p.populateAssociations(ctx, plays, playIDs)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return plays, metadata, nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `
		SELECT id, title, description, image_url
		FROM plays
		WHERE id = $1
	`

	var play domain.Play

	err := p.db.QueryRow(ctx, query, id).Scan(&play.ID, &play.Title, &play.Description, &play.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	plays := []domain.Play{play}

	err = p.populateAssociations(ctx, plays, []int{play.ID})
	if err != nil {
		return nil, err
	}

	return &plays[0], nil
}

func (p *PostgresPlayRepository) UpdateImage(ctx context.Context, id int, imageURL string) error {
	query := `
		UPDATE plays
		SET image_url = $1
		WHERE id = $2
	`

	result, err := p.db.Exec(ctx, query, imageURL, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPlayRepository) populateAssociations(
	ctx context.Context,
	plays []domain.Play,
	playIDs []int) error {

	if len(playIDs) == 0 {
		return nil
	}

	indexByID := make(map[int]int, len(plays))
	for i := range plays {
		plays[i].Genres = make([]domain.Genre, 0)
		plays[i].Actors = make([]domain.Actor, 0)
		indexByID[plays[i].ID] = i
	}

	query := `
		SELECT pg.play_id, g.id, g.name
		FROM genres g
		JOIN play_genres pg ON g.id = pg.genre_id
		WHERE pg.play_id = ANY($1)
		ORDER BY g.name
	`

	rows, err := p.db.Query(ctx, query, playIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var playID int
		var genre domain.Genre

		err = rows.Scan(&playID, &genre.ID, &genre.Name)
		if err != nil {
			return err
		}

		i := indexByID[playID]
		plays[i].Genres = append(plays[i].Genres, genre)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	query = `
		SELECT pa.play_id, a.id, a.first_name, a.last_name
		FROM actors a
		JOIN play_actors pa ON a.id = pa.actor_id
		WHERE pa.play_id = ANY($1)
		ORDER BY a.last_name, a.first_name
	`

	rows, err = p.db.Query(ctx, query, playIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var playID int
		var actor domain.Actor

		err = rows.Scan(&playID, &actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return err
		}

		i := indexByID[playID]
		plays[i].Actors = append(plays[i].Actors, actor)
	}

	return rows.Err()
}
