package summarize

import "errors"

// ErrInvalidInput is returned when a request is missing required input,
// e.g. an empty transcript. No upstream call is made in that case.
var ErrInvalidInput = errors.New("invalid input")
