package app

import (
	"net/http"

	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.ActorRequest

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

	actor := domain.Actor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = app.actorRepo.Create(r.Context(), &actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toActorResponse(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := app.actorRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActorListResponse{
		Actors: make([]api.ActorResponse, len(actors)),
	}

	for i, actor := range actors {
		resp.Actors[i] = toActorResponse(actor)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toActorResponse(actor domain.Actor) api.ActorResponse {
	return api.ActorResponse{
		Id:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  actor.FullName(),
	}
}
