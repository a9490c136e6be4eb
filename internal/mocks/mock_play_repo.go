package mocks

import (
	"context"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPlayRepo struct {
	mock.Mock
	domain.PlayRepository
}

func (m *MockPlayRepo) Create(ctx context.Context, play *domain.Play, genreIDs, actorIDs []int) error {
	args := m.Called(ctx, play, genreIDs, actorIDs)
	return args.Error(0)
}

func (m *MockPlayRepo) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Play), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockPlayRepo) GetById(ctx context.Context, id int) (*domain.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Play), args.Error(1)
}

func (m *MockPlayRepo) UpdateImage(ctx context.Context, id int, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}
