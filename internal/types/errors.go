package types

import "errors"

// Domain specific errors shared across catalog, booking and review services.
var (
	ErrNotFound         = errors.New("requested item not found")
	ErrBadRequest       = errors.New("bad request")
	ErrValidation       = errors.New("validation failed")
	ErrSubmissionFailed = errors.New("booking submission failed")
)
