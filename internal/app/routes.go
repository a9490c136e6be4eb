package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundHandler)

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("theatre-reservation-api", otelchi.WithChiRoutes(r)))
	r.Use(app.withRequestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activated", app.ActivateUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Get("/actors", app.ListActors)
	r.Get("/genres", app.ListGenres)
	r.Get("/theatre-halls", app.ListTheatreHalls)
	r.Get("/plays", app.ListPlays)
	r.Get("/plays/{playId}", app.GetPlayById)
	r.Get("/performances", app.ListPerformances)
	r.Get("/performances/{performanceId}", app.GetPerformanceById)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/users/me", app.GetCurrentUser)

		r.Post("/actors", app.CreateActor)
		r.Post("/genres", app.CreateGenre)
		r.Post("/theatre-halls", app.CreateTheatreHall)
		r.Post("/plays", app.CreatePlay)
		r.Post("/plays/{playId}/image", app.UploadPlayImage)

		r.Post("/performances", app.CreatePerformance)
		r.Put("/performances/{performanceId}", app.UpdatePerformance)
		r.Delete("/performances/{performanceId}", app.DeletePerformance)

		r.Get("/reservations", app.ListReservations)
		r.Post("/reservations", app.CreateReservation)
		r.Get("/reservations/{reservationId}", app.GetReservationById)
		r.Delete("/reservations/{reservationId}", app.DeleteReservation)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.config.Upload.Dir))))

	return r
}
