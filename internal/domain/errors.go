package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUpstream is returned when the text-completion service fails or returns
// an empty plan. Handlers map this to HTTP 502. Parse-quality problems are
// never ErrUpstream — the parser degrades instead of failing.
var ErrUpstream = errors.New("upstream error")
