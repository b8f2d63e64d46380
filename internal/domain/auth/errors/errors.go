package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidPayload     = errors.New("invalid telegram payload")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrMissingSubject     = errors.New("token missing subject")
	ErrMalformedSubject   = errors.New("malformed token subject")
	ErrTokenRevoked       = errors.New("token revoked")
)

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidPayload(err error) bool {
	return errors.Is(err, ErrInvalidPayload)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsInvalidToken covers every way a presented token can be unusable:
// bad signature or expiry, wrong type, revoked, or an unusable subject.
// Transport maps all of them to the same unauthorized response.
func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrWrongTokenType) ||
		errors.Is(err, ErrMissingSubject) ||
		errors.Is(err, ErrMalformedSubject) ||
		errors.Is(err, ErrTokenRevoked)
}

func IsTokenRevoked(err error) bool {
	return errors.Is(err, ErrTokenRevoked)
}
