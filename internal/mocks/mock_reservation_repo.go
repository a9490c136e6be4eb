package mocks

import (
	"context"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation, tickets []domain.TicketRequest) error {
	args := m.Called(ctx, reservation, tickets)
	return args.Error(0)
}

func (m *MockReservationRepo) GetAllByUserId(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.ReservationSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockReservationRepo) GetByIdAndUserId(ctx context.Context, id, userID int) (*domain.ReservationSummary, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationSummary), args.Error(1)
}

func (m *MockReservationRepo) Delete(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
