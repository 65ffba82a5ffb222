package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"closing_table/pkg/errcodes"
	"closing_table/pkg/httpx/reply"
	"closing_table/pkg/logx"
	"closing_table/pkg/middlewarex"
	"closing_table/pkg/rest"
)

const maxRequestBody = 16 << 10

// NewRouter wires the middleware chain and the API routes. Request and
// response dumps go through masker before they are logged.
func NewRouter(s Server, masker logx.SensitiveDataMaskerInterface, logFieldMaxLen int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestSize(maxRequestBody),
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.SetHeader("X-Frame-Options", "DENY"),
		middleware.SetHeader("Referrer-Policy", "no-referrer"),
		middleware.SetHeader("Cache-Control", "no-store"),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		reply.JSON(r.Context(), w, http.StatusNotFound, rest.Error{
			Code:    rest.ErrorCode(errcodes.NotFound),
			Message: "Not found",
		})
	})

	s.RegisterRoutes(r)

	return r
}
