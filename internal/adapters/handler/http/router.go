package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(voteHandler *VoteHandler, restaurantHandler *RestaurantHandler, employeeHandler *EmployeeHandler, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))
		r.Use(VersionMiddleware)

		r.Route("/votes", func(r chi.Router) {
			r.Post("/", voteHandler.Submit)
			r.Get("/mine", voteHandler.History)
			r.Get("/results/today", voteHandler.ResultsToday)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", restaurantHandler.List)
			r.With(RequireAdmin).Post("/", restaurantHandler.Create)
			r.Get("/menu/today", restaurantHandler.TodayMenus)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", restaurantHandler.Get)
				r.With(RequireAdmin).Put("/", restaurantHandler.Update)
				r.With(RequireAdmin).Delete("/", restaurantHandler.Delete)
				r.With(RequireAdmin).Post("/menu", restaurantHandler.CreateMenu)
			})
		})

		r.Get("/employees/me", employeeHandler.GetMe)
	})

	return r
}
