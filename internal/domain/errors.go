package domain

import "errors"

// Error kinds for the pipeline. Layers wrap the underlying cause with
// fmt.Errorf("...: %w", ...) around one of these so callers can classify
// with errors.Is without depending on driver types.
var (
	// ErrConnection marks failures to reach the database.
	ErrConnection = errors.New("connection error")
	// ErrTransport marks HTTP failures against the API.
	ErrTransport = errors.New("transport error")
	// ErrValidation marks records rejected by a storage constraint.
	ErrValidation = errors.New("validation error")
	// ErrQuery marks malformed statements or unexpected driver errors.
	ErrQuery = errors.New("query error")
)
