package errors

import "errors"

var (
	ErrInvalidDistributorInput = errors.New("invalid distributor input")
	ErrDistributorNotFound     = errors.New("distributor not found")
	ErrDistributorIDMismatch   = errors.New("distributor id mismatch between path and body")
)
