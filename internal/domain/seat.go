package domain

import "fmt"

// SeatPosition identifies a single seat inside a hall.
type SeatPosition struct {
	Row  int
	Seat int
}

// SeatRangeError reports a row or seat number that falls outside the
// dimensions of a theatre hall. Upper is the inclusive maximum for the field;
// the minimum is always 1.
type SeatRangeError struct {
	Field string
	Value int
	Upper int
}

func (e *SeatRangeError) Error() string {
	return fmt.Sprintf("%s must be in range (1, %d), got %d", e.Field, e.Upper, e.Value)
}

// ValidateSeat checks a (row, seat) pair against the dimensions of hall.
// It is the single validation entry point for every write path: the API layer
// calls it before opening a transaction and the reservation repository calls
// it again inside the transaction, so no code path can persist an
// out-of-range ticket.
func ValidateSeat(row, seat int, hall TheatreHall) error {
	if row < 1 || row > hall.Rows {
		return &SeatRangeError{Field: "row", Value: row, Upper: hall.Rows}
	}

	if seat < 1 || seat > hall.SeatsInRow {
		return &SeatRangeError{Field: "seat", Value: seat, Upper: hall.SeatsInRow}
	}

	return nil
}
