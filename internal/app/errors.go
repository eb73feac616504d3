package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when the github api reports that a repository doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by a missing repository
func IsNotFoundError(err error) bool {
	type notFoundErr interface {
		IsNotFound() bool
	}

	var nfe notFoundErr
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// PendingStatsError is returned when the github api is still computing commit
// activity stats after the retry budget is exhausted.
type PendingStatsError string

// Error implements error interface
func (e PendingStatsError) Error() string {
	return string(e)
}

// IsPendingStats tells that this error is 'pending stats'.
// Returns always true.
func (PendingStatsError) IsPendingStats() bool {
	return true
}

// IsPendingStatsError checks if given error is caused by still-computing stats
func IsPendingStatsError(err error) bool {
	type pendingStatsErr interface {
		IsPendingStats() bool
	}

	var pse pendingStatsErr
	if errors.As(err, &pse) {
		return pse.IsPendingStats()
	}

	return false
}

// TooManyRequestsError is special error type returned when request couldn't be processed because of some limits
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeded limits
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	var tmr tooManyReqErr
	if errors.As(err, &tmr) {
		return tmr.IsTooManyRequests()
	}

	return false
}
