package domain

import (
	"context"
	"time"
)

// Performance is a single scheduled showing of a Play in a TheatreHall.
type Performance struct {
	ID            int
	PlayID        int
	TheatreHallID int
	ShowTime      time.Time
	Props         []Prop
}

// Prop is a stage property shared between performances. Props are looked up
// by name and created on demand when a performance is updated.
type Prop struct {
	ID   int
	Name string
}

// PerformanceSummary is the listing projection. TicketsAvailable is computed
// per query from the hall capacity minus the number of committed tickets;
// it is never stored.
type PerformanceSummary struct {
	ID               int
	ShowTime         time.Time
	PlayTitle        string
	PlayImageURL     *string
	HallName         string
	HallCapacity     int
	TicketsAvailable int
}

// PerformanceDetail carries everything a client needs to pick seats.
type PerformanceDetail struct {
	ID         int
	ShowTime   time.Time
	Play       Play
	Hall       TheatreHall
	TakenSeats []SeatPosition
	Props      []Prop
}

type PerformanceFilters struct {
	Date   *time.Time
	PlayID *int
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *Performance) error
	GetAll(ctx context.Context, filters PerformanceFilters) ([]PerformanceSummary, error)
	GetById(ctx context.Context, id int) (*PerformanceDetail, error)

	// Update applies scalar field changes and replaces the performance's
	// prop set in a single transaction. Props are matched by name and
	// created when missing.
	Update(ctx context.Context, performance *Performance, propNames []string) error

	Delete(ctx context.Context, id int) error
}
