package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	InvalidCeiling    failure.ErrorCode = "InvalidCeiling"    // ceiling is not finite or is out of bounds
	InvalidFloor      failure.ErrorCode = "InvalidFloor"      // floor is not finite or is out of bounds
	InvalidDealParams failure.ErrorCode = "InvalidDealParams" // misconfigured mechanism parameters
	CorruptRecord     failure.ErrorCode = "CorruptRecord"     // stored offer/result could not be decoded
	StoreUnavailable  failure.ErrorCode = "StoreUnavailable"
	NotifyFailed      failure.ErrorCode = "NotifyFailed"
)
