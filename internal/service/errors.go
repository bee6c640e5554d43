package service

import "errors"

// Client lifecycle errors. Each one maps to exactly one machine-readable
// error code of the management API.
var (
	ErrClientNotFound            = errors.New("client not found")
	ErrClientInUse               = errors.New("client is in use")
	ErrBadAccessToken            = errors.New("invalid access token")
	ErrBadAccessDetails          = errors.New("failed to reach homeserver with given access details")
	ErrIdentityMismatch          = errors.New("access token belongs to a different user")
	ErrIdentityAlreadyRegistered = errors.New("a client with that user ID already exists")
	ErrConnectionError           = errors.New("failed to start client connection")
	ErrInvalidPayload            = errors.New("invalid client payload")
)

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongCredentials        = errors.New("wrong login or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
