package app

import "errors"

// InvalidRequestError is returned when any request params are invalid.
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

// NotFoundError is returned when requested entity doesn't exist, upstream or in the store.
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

// TooManyRequestsError is returned when the upstream rate limit can't be satisfied.
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

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var target interface{ IsInvalidRequest() bool }
	if errors.As(err, &target) {
		return target.IsInvalidRequest()
	}

	return false
}

// IsNotFoundError checks if given error is caused by a missing entity
func IsNotFoundError(err error) bool {
	var target interface{ IsNotFound() bool }
	if errors.As(err, &target) {
		return target.IsNotFound()
	}

	return false
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit
func IsTooManyRequestsError(err error) bool {
	var target interface{ IsTooManyRequests() bool }
	if errors.As(err, &target) {
		return target.IsTooManyRequests()
	}

	return false
}
