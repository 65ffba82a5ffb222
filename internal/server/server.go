package server

// Server groups the HTTP servers of the individual resources.
type Server struct {
	NegotiationServer
	HealthServer
}

func NewServer(
	negotiationServer NegotiationServer,
	healthServer HealthServer,
) Server {
	return Server{
		NegotiationServer: negotiationServer,
		HealthServer:      healthServer,
	}
}
