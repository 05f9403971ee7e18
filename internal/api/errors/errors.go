// Package errors defines the typed errors returned by services and rendered by transports.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Kind classifies an APIError.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindAuth        Kind = "auth"
	KindNotFound    Kind = "not_found"
	KindConsistency Kind = "consistency"
	KindInternal    Kind = "internal"
)

// Reason narrows down an auth failure.
type Reason string

const (
	ReasonTokenRequired      Reason = "token_required"
	ReasonInvalidToken       Reason = "invalid_token"
	ReasonMissingIdentity    Reason = "missing_identity"
	ReasonUnknownIdentity    Reason = "unknown_identity"
	ReasonNotOwner           Reason = "not_owner"
	ReasonInvalidCredentials Reason = "invalid_credentials"
)

// APIError is an error that carries the status it maps to at the boundary.
type APIError struct {
	Kind     Kind
	Reason   Reason
	HTTPCode int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As extracts an APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}

// IsReason reports whether err is an auth APIError with the given reason.
func IsReason(err error, reason Reason) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == KindAuth && apiErr.Reason == reason
}

func NewErrValidation(message string) *APIError {
	return &APIError{Kind: KindValidation, HTTPCode: http.StatusBadRequest, Message: message}
}

func NewErrMalformattedID(err error) *APIError {
	return &APIError{Kind: KindValidation, HTTPCode: http.StatusBadRequest, Message: "malformatted id", Err: err}
}

func newAuth(reason Reason, message string, err error) *APIError {
	return &APIError{Kind: KindAuth, Reason: reason, HTTPCode: http.StatusUnauthorized, Message: message, Err: err}
}

func NewErrTokenRequired() *APIError {
	return newAuth(ReasonTokenRequired, "token missing", nil)
}

func NewErrInvalidToken(err error) *APIError {
	return newAuth(ReasonInvalidToken, "token invalid", err)
}

func NewErrMissingIdentity(err error) *APIError {
	return newAuth(ReasonMissingIdentity, "token carries no user id", err)
}

func NewErrUnknownIdentity(userID uuid.UUID) *APIError {
	return newAuth(ReasonUnknownIdentity, fmt.Sprintf("user %s does not exist", userID), nil)
}

func NewErrNotOwner() *APIError {
	return newAuth(ReasonNotOwner, "only the creator can modify a blog", nil)
}

func NewErrInvalidCredentials() *APIError {
	return newAuth(ReasonInvalidCredentials, "invalid username or password", nil)
}

func newNotFound(message string) *APIError {
	return &APIError{Kind: KindNotFound, HTTPCode: http.StatusNotFound, Message: message}
}

func NewErrBlogNotFound(id uuid.UUID) *APIError {
	return newNotFound(fmt.Sprintf("blog %s not found", id))
}

func NewErrPersonNotFound(id uuid.UUID) *APIError {
	return newNotFound(fmt.Sprintf("person %s not found", id))
}

// NewErrConsistency reports that the owner's blog list could not be updated
// after the blog itself was written.
func NewErrConsistency(blogID, ownerID uuid.UUID, err error) *APIError {
	return &APIError{
		Kind:     KindConsistency,
		HTTPCode: http.StatusInternalServerError,
		Message:  fmt.Sprintf("blog %s and owner %s are out of sync", blogID, ownerID),
		Err:      err,
	}
}

// NewErrInternalServerError hides err behind a generic message.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{Kind: KindInternal, HTTPCode: http.StatusInternalServerError, Message: "internal server error", Err: err}
}
