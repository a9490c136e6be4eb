package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrSeatAlreadyTaken   = errors.New("seat is already taken for this performance")
	ErrGenreAlreadyExists = errors.New("genre already exists")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrCapacityExceeded   = errors.New("ticket count exceeds hall capacity")
)
