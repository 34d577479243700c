package model

import "errors"

var (
	// ErrInvalidArgument marks a caller contract violation such as a malformed
	// filter or a non-positive amount.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientBalance marks a withdrawal larger than what is available.
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotFound            = errors.New("not found")
	// ErrMalformedImport marks a backup document that failed to parse or validate.
	ErrMalformedImport = errors.New("malformed import")
)
