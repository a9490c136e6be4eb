package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
)

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var input api.PerformanceRequest

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

	performance := domain.Performance{
		PlayID:        input.PlayId,
		TheatreHallID: input.TheatreHallId,
		ShowTime:      input.ShowTime,
	}

	err = app.performanceRepo.Create(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, errors.New("referenced play or theatre hall does not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPerformanceResponse(performance), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListPerformances(w http.ResponseWriter, r *http.Request) {
	playID, err := readQueryInt(r, "play")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.ListPerformancesParams{
		Date: readQueryString(r, "date"),
		Play: playID,
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.PerformanceFilters{
		PlayID: params.Play,
	}

	if params.Date != nil {
		date, err := time.Parse("2006-01-02", *params.Date)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("query parameter date must be in YYYY-MM-DD format"))
			return
		}

		filters.Date = &date
	}

	performances, err := app.performanceRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PerformanceListResponse{
		Performances: make([]api.PerformanceSummary, len(performances)),
	}

	for i, performance := range performances {
		resp.Performances[i] = api.PerformanceSummary{
			Id:                  performance.ID,
			ShowTime:            performance.ShowTime,
			PlayTitle:           performance.PlayTitle,
			PlayImageUrl:        performance.PlayImageURL,
			TheatreHallName:     performance.HallName,
			TheatreHallCapacity: performance.HallCapacity,
			TicketsAvailable:    performance.TicketsAvailable,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformanceById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "performanceId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	performance, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	takenSeats := make([]api.SeatPosition, len(performance.TakenSeats))
	for i, seat := range performance.TakenSeats {
		takenSeats[i] = api.SeatPosition{Row: seat.Row, Seat: seat.Seat}
	}

	props := make([]api.PropResponse, len(performance.Props))
	for i, prop := range performance.Props {
		props[i] = api.PropResponse{Id: prop.ID, Name: prop.Name}
	}

	resp := api.PerformanceDetailResponse{
		Id:          performance.ID,
		ShowTime:    performance.ShowTime,
		Play:        toPlayResponse(performance.Play),
		TheatreHall: toTheatreHallResponse(performance.Hall),
		TakenSeats:  takenSeats,
		Props:       props,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "performanceId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.PerformanceUpdateRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	performance := domain.Performance{
		ID:            id,
		PlayID:        input.PlayId,
		TheatreHallID: input.TheatreHallId,
		ShowTime:      input.ShowTime,
	}

	propNames := make([]string, len(input.Props))
	for i, prop := range input.Props {
		propNames[i] = prop.Name
	}

	err = app.performanceRepo.Update(r.Context(), &performance, propNames)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPerformanceResponse(performance), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "performanceId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.performanceRepo.Delete(r.Context(), id)
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

func toPerformanceResponse(performance domain.Performance) api.PerformanceResponse {
	return api.PerformanceResponse{
		Id:            performance.ID,
		PlayId:        performance.PlayID,
		TheatreHallId: performance.TheatreHallID,
		ShowTime:      performance.ShowTime,
	}
}
