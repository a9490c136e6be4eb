package app

import (
	"errors"
	"net/http"

	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
)

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var input api.PlayRequest

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

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
	}

	err = app.playRepo.Create(r.Context(), &play, input.GenreIds, input.ActorIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, errors.New("one or more referenced genres or actors do not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPlayResponse(play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListPlays(w http.ResponseWriter, r *http.Request) {
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

	params := api.ListPlaysParams{
		Title:    readQueryString(r, "title"),
		Genres:   readQueryString(r, "genres"),
		Actors:   readQueryString(r, "actors"),
		Page:     page,
		PageSize: pageSize,
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	genreIDs, err := readQueryIntList(r, "genres")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actorIDs, err := readQueryIntList(r, "actors")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.PlayFilters{
		GenreIDs:   genreIDs,
		ActorIDs:   actorIDs,
		Pagination: app.paginationFromParams(params.Page, params.PageSize),
	}
	if params.Title != nil {
		filters.Title = *params.Title
	}

	plays, metadata, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlayListResponse{
		Plays:    make([]api.PlayResponse, len(plays)),
		Metadata: toMetadataResponse(metadata),
	}

	for i, play := range plays {
		resp.Plays[i] = toPlayResponse(play)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlayById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "playId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlayResponse(*play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) paginationFromParams(page, pageSize *int) domain.Pagination {
	pagination := domain.Pagination{
		Page:     1,
		PageSize: app.config.DefaultPageSize,
	}

	if page != nil {
		pagination.Page = *page
	}
	if pageSize != nil {
		pagination.PageSize = *pageSize
	}

	return pagination
}

func toPlayResponse(play domain.Play) api.PlayResponse {
	resp := api.PlayResponse{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Genres:      make([]api.GenreResponse, len(play.Genres)),
		Actors:      make([]api.ActorResponse, len(play.Actors)),
		ImageUrl:    play.ImageURL,
	}

	for i, genre := range play.Genres {
		resp.Genres[i] = api.GenreResponse{Id: genre.ID, Name: genre.Name}
	}

	for i, actor := range play.Actors {
		resp.Actors[i] = toActorResponse(actor)
	}

	return resp
}

func toMetadataResponse(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
