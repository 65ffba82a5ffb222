package server

import (
	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/service/negotiation"
	"closing_table/pkg/rest"
)

func newRESTSubmission(submission negotiation.Submission) rest.SubmitOfferResponse {
	return rest.SubmitOfferResponse{
		Status:    submission.Status(),
		Final:     submission.Final,
		Suggested: submission.Suggested,
		ResultID:  submission.ResultID.String(),
	}
}

func newRESTResultResponse(lookup negotiation.ResultLookup) rest.ResultResponse {
	response := rest.ResultResponse{Status: lookup.Status.String()}

	if lookup.Result != nil {
		response.Result = newRESTResult(*lookup.Result)
	}

	return response
}

func newRESTResult(result entity.Result) *rest.Result {
	return &rest.Result{
		Status:    result.Status.String(),
		Final:     result.Final,
		Suggested: result.Suggested,
		CreatedAt: result.CreatedAt,
	}
}
