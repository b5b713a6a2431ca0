package google

import "errors"

var (
	// ErrInvalidToken is returned when Google rejects the access token
	ErrInvalidToken = errors.New("invalid access token")

	// ErrNetworkError is returned when Google could not be reached
	ErrNetworkError = errors.New("network error")

	// ErrInvalidResponse is returned when the userinfo payload cannot be decoded
	ErrInvalidResponse = errors.New("invalid userinfo response")
)
