package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadPlayImage stores an uploaded poster image on disk under a
// slug-plus-uuid filename and records its public URL on the play.
func (app *Application) UploadPlayImage(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, app.config.Upload.MaxBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			app.badRequestResponse(w, r, fmt.Errorf("image must not be larger than %d bytes", maxBytesError.Limit))
			return
		}

		app.badRequestResponse(w, r, errors.New("request must contain an image file in the 'image' form field"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		app.badRequestResponse(w, r, fmt.Errorf("unsupported image type %q", ext))
		return
	}

	fileName := fmt.Sprintf("%s-%s%s", slug.Make(play.Title), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(app.config.Upload.Dir, fileName))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	imageURL := "/uploads/" + fileName

	err = app.playRepo.UpdateImage(r.Context(), play.ID, imageURL)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlayImageResponse{
		Id:       play.ID,
		ImageUrl: imageURL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
