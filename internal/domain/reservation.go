package domain

import (
	"context"
	"time"
)

// Reservation is a timestamped batch of tickets belonging to one user.
// Tickets cannot outlive their reservation: deleting a reservation deletes
// its tickets.
type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

// Ticket is a claim on one seat for one performance. The triple
// (performance, row, seat) is unique across all tickets, enforced by the
// storage layer.
type Ticket struct {
	ID            int
	Row           int
	Seat          int
	PerformanceID int
	ReservationID int
}

// TicketRequest is one requested seat inside a reservation batch.
type TicketRequest struct {
	Row           int
	Seat          int
	PerformanceID int
}

// ReservationSummary is the listing projection for a user's reservations.
type ReservationSummary struct {
	ID        int
	CreatedAt time.Time
	Tickets   []TicketSummary
}

type TicketSummary struct {
	ID              int
	Row             int
	Seat            int
	PerformanceID   int
	ShowTime        time.Time
	PlayTitle       string
	TheatreHallName string
}

type ReservationRepository interface {
	// Create persists the reservation and one ticket per request in a single
	// transaction. Requests are processed in order; the first failure aborts
	// the whole batch and nothing is persisted. A unique violation on
	// (performance, row, seat) is returned as ErrSeatAlreadyTaken, an
	// out-of-range seat as *SeatRangeError, and an unknown performance as
	// ErrRecordNotFound.
	Create(ctx context.Context, reservation *Reservation, tickets []TicketRequest) error

	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]ReservationSummary, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, id, userID int) (*ReservationSummary, error)
	Delete(ctx context.Context, id, userID int) error
}
