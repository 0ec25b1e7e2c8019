package apperrors

import "fmt"

// Kind identifies the category of a domain error. The transport layer
// maps each kind to exactly one HTTP status code.
type Kind int

const (
	// InvalidPage means the page token did not parse as an integer >= 1.
	InvalidPage Kind = iota
	// InvalidResourceID means the caller supplied an empty identifier.
	InvalidResourceID
	// ResourceNotFound means a lookup by identifier found no row.
	ResourceNotFound
	// Validation means a required field was missing or empty, or a
	// supplied value was malformed.
	Validation
	// AlreadyExists means a create collided with an existing primary key.
	AlreadyExists
)

// Error is the single domain error type crossing the service boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a domain error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InvalidPageError builds the invalid-page error for the given raw
// page token. The message echoes the original, unparsed input.
func InvalidPageError(page string) *Error {
	return New(InvalidPage, "Invalid page %s, page should be a number starting from 1", page)
}

// NotFoundError builds the lookup-miss error for an entity kind and id.
func NotFoundError(entity string, id any) *Error {
	return New(ResourceNotFound, "%s not found with id %v", entity, id)
}
