package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores when a unique constraint is violated.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidToken means the token signature or payload could not be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingIdentity means the token is valid but carries no usable user id.
	ErrMissingIdentity = errors.New("token carries no identity")
)
