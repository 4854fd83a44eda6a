package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindForbidden
	KindNotFound
)

// DomainError is raised by the validator, lifecycle and rule services and
// carried losslessly up to the handler boundary, where Kind picks the
// HTTP status.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

func Validation(message string) error {
	return DomainError{Kind: KindValidation, Message: message}
}

func Forbidden(message string) error {
	return DomainError{Kind: KindForbidden, Message: message}
}

func NotFound(message string) error {
	return DomainError{Kind: KindNotFound, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return IsKind(err, KindValidation) }
func IsForbidden(err error) bool  { return IsKind(err, KindForbidden) }
func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
