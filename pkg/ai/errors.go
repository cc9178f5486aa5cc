package ai

import "errors"

// ErrEmptyGeneration is returned when the backend answered the request but
// produced no usable completion (empty choice list or blank content).
var ErrEmptyGeneration = errors.New("model returned no completion")
