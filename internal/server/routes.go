package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"closing_table/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/health", handler(s.getHealth))

		r.Route("/api", func(r chi.Router) {
			r.Route("/offers", func(r chi.Router) {
				r.Post("/", handler(s.postOffer))
				r.Get("/{offerId}", handler(s.getOfferStatus))
				r.Post("/{offerId}/submit", handler(s.postOfferSubmit))
			})

			r.Get("/results/{resultId}", handler(s.getResult))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
