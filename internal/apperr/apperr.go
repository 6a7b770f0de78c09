// Package apperr defines the typed failures the service surfaces to the HTTP
// boundary. Each failure carries a kind that maps to a status code and a name
// that appears in the error response body.
package apperr

// Kind classifies a failure for status-code mapping.
type Kind int

const (
	KindNotFound Kind = iota
	KindUnauthorized
	KindBadValue
	KindProcessing
)

// Error is a typed service failure. The boundary layer maps Kind to an HTTP
// status and echoes Name in the response body; nothing in between is allowed
// to swallow or downgrade it.
type Error struct {
	Name    string
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(name string, kind Kind, msg, fallback string) *Error {
	if msg == "" {
		msg = fallback
	}
	return &Error{Name: name, Kind: kind, Message: msg}
}

// AccountNotFound reports a missing account record.
func AccountNotFound(msg string) *Error {
	return newError("AccountNotFound", KindNotFound, msg, "Account not found.")
}

// TypeNotFound reports a missing account type record.
func TypeNotFound(msg string) *Error {
	return newError("TypeNotFound", KindNotFound, msg, "Type not found")
}

// UserNotFound reports that the identity service did not recognise the
// caller token. Client-visible not-found, never a processing fault.
func UserNotFound(msg string) *Error {
	return newError("UserNotFound", KindNotFound, msg, "User not found")
}

// UnauthorizedAccess reports an attempt to touch another user's account.
func UnauthorizedAccess(msg string) *Error {
	return newError("UnauthorizedAccess", KindUnauthorized, msg, "Unauthorized")
}

// BadValue reports invalid caller input, e.g. an empty account type name.
func BadValue(msg string) *Error {
	return newError("BadValue", KindBadValue, msg, "Bad value")
}

// Processing reports an upstream or internal fault: store errors, identity
// service 5xx responses, malformed payloads.
func Processing(msg string) *Error {
	return newError("Processing", KindProcessing, msg, "Unable to process request")
}
