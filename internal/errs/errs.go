package errs

import (
	"errors"
)

var (
	ErrUsage          = errors.New("usage error")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrRemoteCall      = errors.New("remote call failed")
	ErrAPIError        = errors.New("api error")
	ErrUnexpectedValue = errors.New("unexpected property value")
)

var (
	ErrTimeout           = errors.New("confirmation timeout")
	ErrStreamClosed      = errors.New("notification stream closed")
	ErrInvalidTransition = errors.New("invalid tracker transition")
	ErrEmptyExpectation  = errors.New("empty expectation")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrUnknownTransport  = errors.New("unknown transport")
)
