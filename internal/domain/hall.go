package domain

import "context"

// TheatreHall is immutable after creation: performances and tickets depend
// on its dimensions staying fixed.
type TheatreHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

// Capacity is the total number of distinct seats in the hall.
func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type TheatreHallRepository interface {
	Create(ctx context.Context, hall *TheatreHall) error
	GetAll(ctx context.Context) ([]TheatreHall, error)
	GetById(ctx context.Context, id int) (*TheatreHall, error)
}
