package mocks

import (
	"context"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPerformanceRepo struct {
	mock.Mock
	domain.PerformanceRepository
}

func (m *MockPerformanceRepo) Create(ctx context.Context, performance *domain.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) GetAll(ctx context.Context, filters domain.PerformanceFilters) ([]domain.PerformanceSummary, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PerformanceSummary), args.Error(1)
}

func (m *MockPerformanceRepo) GetById(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceDetail), args.Error(1)
}

func (m *MockPerformanceRepo) Update(ctx context.Context, performance *domain.Performance, propNames []string) error {
	args := m.Called(ctx, performance, propNames)
	return args.Error(0)
}

func (m *MockPerformanceRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
