// Package common defines the error taxonomy shared across the bytestashy
// client. Every failure a command can see is one of the types below; callers
// match them with errors.Is / errors.As.
package common

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the server answers 404 for an id-addressed
// resource.
var ErrNotFound = errors.New("snippet not found")

// AuthError means the server rejected the supplied credentials or API key.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Message
}

// ValidationError carries the raw body of a 400 response. The server's field
// validation messages are opaque to the client and passed through verbatim.
type ValidationError struct {
	Body string
}

func (e *ValidationError) Error() string {
	return "request rejected by server: " + e.Body
}

// APIError is the catch-all for unexpected HTTP statuses.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: HTTP %d - %s", e.Status, e.Body)
}

// ProtocolError means a response body did not decode as the expected JSON.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return "response was not valid JSON: " + e.Err.Error()
	}
	return "response was not valid JSON"
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// FileOperationError reports a local file that could not be read.
type FileOperationError struct {
	Path string
	Err  error
}

func (e *FileOperationError) Error() string {
	return fmt.Sprintf("file operation failed: %s - %v", e.Path, e.Err)
}

func (e *FileOperationError) Unwrap() error { return e.Err }

// CredentialError reports an inconsistency between the config file and the
// platform keyring (e.g. config present but no vault entry).
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential store error: %v", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// InvalidInputError reports a client-side precondition failure detected
// before any request is sent.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}
