package mocks

import (
	"context"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
)

type MockActorRepo struct {
	domain.ActorRepository
	CreateFunc func(ctx context.Context, actor *domain.Actor) error
	GetAllFunc func(ctx context.Context) ([]domain.Actor, error)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	return m.GetAllFunc(ctx)
}

type MockGenreRepo struct {
	domain.GenreRepository
	CreateFunc func(ctx context.Context, genre *domain.Genre) error
	GetAllFunc func(ctx context.Context) ([]domain.Genre, error)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	return m.CreateFunc(ctx, genre)
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	return m.GetAllFunc(ctx)
}

type MockTheatreHallRepo struct {
	domain.TheatreHallRepository
	CreateFunc  func(ctx context.Context, hall *domain.TheatreHall) error
	GetAllFunc  func(ctx context.Context) ([]domain.TheatreHall, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.TheatreHall, error)
}

func (m *MockTheatreHallRepo) Create(ctx context.Context, hall *domain.TheatreHall) error {
	return m.CreateFunc(ctx, hall)
}

func (m *MockTheatreHallRepo) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockTheatreHallRepo) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	return m.GetByIdFunc(ctx, id)
}
