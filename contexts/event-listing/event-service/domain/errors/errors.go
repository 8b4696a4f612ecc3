package errors

import "errors"

var (
	ErrInvalidEventInput  = errors.New("invalid event input")
	ErrEventIDMismatch    = errors.New("event id mismatch")
	ErrEventNotFound      = errors.New("event not found")
	ErrAuthorNotFound     = errors.New("event author not found")
	ErrInvalidVoteInput   = errors.New("invalid vote input")
	ErrInvalidReportInput = errors.New("invalid report input")
	ErrNoTickets          = errors.New("event has no tickets")
	ErrInvalidTicketInput = errors.New("invalid ticket input")
	ErrUnknownLocation    = errors.New("unknown location kind")
	ErrUnknownEventType   = errors.New("unknown event type")
	ErrUnknownStatus      = errors.New("unknown event status")
)
