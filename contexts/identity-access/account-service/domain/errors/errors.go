package errors

import "errors"

var (
	ErrInvalidAccountInput  = errors.New("invalid account input")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid or unparsable token")
	ErrTokenSubjectMismatch = errors.New("token subject does not match user")
)
