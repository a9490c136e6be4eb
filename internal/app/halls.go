package app

import (
	"net/http"

	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var input api.TheatreHallRequest

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

	hall := domain.TheatreHall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheatreHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTheatreHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheatreHallListResponse{
		TheatreHalls: make([]api.TheatreHallResponse, len(halls)),
	}

	for i, hall := range halls {
		resp.TheatreHalls[i] = toTheatreHallResponse(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheatreHallResponse(hall domain.TheatreHall) api.TheatreHallResponse {
	return api.TheatreHallResponse{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
