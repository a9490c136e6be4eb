package domain

import "context"

type Play struct {
	ID          int
	Title       string
	Description string
	Genres      []Genre
	Actors      []Actor
	ImageURL    *string
}

type PlayFilters struct {
	Title    string
	GenreIDs []int
	ActorIDs []int
	Pagination
}

type PlayRepository interface {
	Create(ctx context.Context, play *Play, genreIDs, actorIDs []int) error
	GetAll(ctx context.Context, filters PlayFilters) ([]Play, *Metadata, error)
	GetById(ctx context.Context, id int) (*Play, error)
	UpdateImage(ctx context.Context, id int, imageURL string) error
}
