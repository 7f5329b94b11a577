package domain

import "errors"

// ErrorKind classifies every failure a service may return. Handlers map
// kinds to HTTP status codes in exactly one place; nothing else inspects
// error types.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewUnauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NewForbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NewNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf reports the kind of err, or false if err does not carry one.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
