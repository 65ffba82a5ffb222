package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldMessageID       = "message-id"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"

	FieldOfferID      = "offer-id"
	FieldResultID     = "result-id"
	FieldOutcome      = "outcome"
	FieldLookup       = "lookup-status"
	FieldStore        = "store"
	FieldReaped       = "reaped"
	FieldTaskType     = "task-type"
	FieldContact      = "contact"
	FieldRevealLink   = "reveal-link"
	FieldStoreBackend = "store-backend"
)
