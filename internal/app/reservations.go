package app

import (
	"errors"
	"net/http"

	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	tickets := make([]domain.TicketRequest, len(input.Tickets))
	for i, ticket := range input.Tickets {
		tickets[i] = domain.TicketRequest{
			Row:           ticket.Row,
			Seat:          ticket.Seat,
			PerformanceID: ticket.PerformanceId,
		}
	}

	// Pre-check seat bounds against the halls before opening a transaction.
	// The repository revalidates inside the transaction, so this is purely to
	// fail fast on requests that could never succeed.
	err = app.validateSeatBounds(r, tickets)
	if err != nil {
		app.reservationErrorResponse(w, r, err)
		return
	}

	reservation := domain.Reservation{UserID: userId}

	err = app.reservationRepo.Create(r.Context(), &reservation, tickets)
	if err != nil {
		app.reservationErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.TicketResponse, len(reservation.Tickets)),
	}

	for i, ticket := range reservation.Tickets {
		resp.Tickets[i] = api.TicketResponse{
			Id:            ticket.ID,
			Row:           ticket.Row,
			Seat:          ticket.Seat,
			PerformanceId: ticket.PerformanceID,
		}
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// validateSeatBounds looks up each referenced performance's hall and checks
// every requested seat against its dimensions.
func (app *Application) validateSeatBounds(r *http.Request, tickets []domain.TicketRequest) error {
	halls := make(map[int]domain.TheatreHall)

	for _, ticket := range tickets {
		hall, ok := halls[ticket.PerformanceID]
		if !ok {
			performance, err := app.performanceRepo.GetById(r.Context(), ticket.PerformanceID)
			if err != nil {
				return err
			}

			hall = performance.Hall
			halls[ticket.PerformanceID] = hall
		}

		if err := domain.ValidateSeat(ticket.Row, ticket.Seat, hall); err != nil {
			return err
		}
	}

	return nil
}

func (app *Application) reservationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var seatRangeError *domain.SeatRangeError

	switch {
	case errors.As(err, &seatRangeError):
		app.errorResponse(w, r, http.StatusUnprocessableEntity, seatRangeError.Error())
	case errors.Is(err, domain.ErrSeatAlreadyTaken):
		app.conflictResponse(w, r, err.Error())
	case errors.Is(err, domain.ErrRecordNotFound):
		app.badRequestResponse(w, r, errors.New("one or more referenced performances do not exist"))
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	page, err := readQueryInt(r, "page")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pageSize, err := readQueryInt(r, "pageSize")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.ListReservationsParams{
		Page:     page,
		PageSize: pageSize,
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := app.paginationFromParams(params.Page, params.PageSize)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserReservationsResponse{
		Reservations: make([]api.ReservationSummary, len(reservations)),
		Metadata:     toMetadataResponse(metadata),
	}

	for i, reservation := range reservations {
		resp.Reservations[i] = toReservationSummaryResponse(reservation)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservationById(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	id, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	reservation, err := app.reservationRepo.GetByIdAndUserId(r.Context(), id, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toReservationSummaryResponse(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	id, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.reservationRepo.Delete(r.Context(), id, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toReservationSummaryResponse(reservation domain.ReservationSummary) api.ReservationSummary {
	resp := api.ReservationSummary{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.TicketDetail, len(reservation.Tickets)),
	}

	for i, ticket := range reservation.Tickets {
		resp.Tickets[i] = api.TicketDetail{
			Id:              ticket.ID,
			Row:             ticket.Row,
			Seat:            ticket.Seat,
			PerformanceId:   ticket.PerformanceID,
			ShowTime:        ticket.ShowTime,
			PlayTitle:       ticket.PlayTitle,
			TheatreHallName: ticket.TheatreHallName,
		}
	}

	return resp
}
