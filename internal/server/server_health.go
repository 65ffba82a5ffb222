package server

import (
	"net/http"
	"time"

	"closing_table/pkg/httpx/reply"
	"closing_table/pkg/rest"
)

type HealthServer struct {
	now func() time.Time
}

func NewHealthServer() HealthServer {
	return HealthServer{now: time.Now}
}

func (s HealthServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.HealthResponse{
		Status: "ok",
		Time:   s.now().UTC(),
	})

	return nil
}
