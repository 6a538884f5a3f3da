package cerr

import (
	"errors"
	"fmt"
)

// Kind categorizes recoverable failures, so the console shell can pick
// a suitable user-facing message without inspecting concrete errors.
type Kind int

const (
	KindUnknown Kind = iota

	KindBadRequest     // malformed or out of range input
	KindAuthentication // missing session or bad credentials
	KindAuthorization  // valid session, but not allowed to act
	KindNotFound       // referenced entity does not exist
	KindConflict       // operation conflicts with the current state
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad-request"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not-found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type Error struct {
	Err  error
	Kind Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, Kind: KindBadRequest}
}

func Authentication(err error) *Error {
	return &Error{Err: err, Kind: KindAuthentication}
}

func Authorization(err error) *Error {
	return &Error{Err: err, Kind: KindAuthorization}
}

func NotFound(err error) *Error {
	return &Error{Err: err, Kind: KindNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, Kind: KindConflict}
}

// KindOf extracts the Kind of the first *Error in the chain of err,
// returning KindUnknown if no such wrapper is found.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
