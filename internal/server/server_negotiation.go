package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"closing_table/internal/domain/service/negotiation"
	"closing_table/internal/domain/value"
	"closing_table/pkg/httpx/reply"
	"closing_table/pkg/httpx/req"
	"closing_table/pkg/rest"
)

type negotiationService interface {
	CreateOffer(ctx context.Context, ceiling float64) (value.OfferID, error)
	GetOfferStatus(ctx context.Context, rawID string) (value.LookupStatus, error)
	SubmitOffer(ctx context.Context, rawID string, floor float64, contact string) (negotiation.Submission, error)
	GetResult(ctx context.Context, rawID string) (negotiation.ResultLookup, error)
}

type NegotiationServer struct {
	negotiationService negotiationService
}

func NewNegotiationServer(negotiationService negotiationService) NegotiationServer {
	return NegotiationServer{
		negotiationService: negotiationService,
	}
}

func (s NegotiationServer) postOffer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateOfferRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	id, err := s.negotiationService.CreateOffer(ctx, *request.Ceiling)
	if err != nil {
		return fmt.Errorf("negotiationService.CreateOffer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CreateOfferResponse{OfferID: id.String()})

	return nil
}

func (s NegotiationServer) getOfferStatus(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	status, err := s.negotiationService.GetOfferStatus(ctx, chi.URLParam(r, "offerId"))
	if err != nil {
		return fmt.Errorf("negotiationService.GetOfferStatus: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.OfferStatusResponse{Status: status.String()})

	return nil
}

func (s NegotiationServer) postOfferSubmit(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SubmitOfferRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	submission, err := s.negotiationService.SubmitOffer(ctx, chi.URLParam(r, "offerId"), *request.Floor, request.Email)
	if err != nil {
		return fmt.Errorf("negotiationService.SubmitOffer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSubmission(submission))

	return nil
}

func (s NegotiationServer) getResult(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	lookup, err := s.negotiationService.GetResult(ctx, chi.URLParam(r, "resultId"))
	if err != nil {
		return fmt.Errorf("negotiationService.GetResult: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTResultResponse(lookup))

	return nil
}
