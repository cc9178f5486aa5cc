package transcript

import "errors"

// ErrNotFound is returned when a video has no captions for the requested
// language, or the video itself does not exist.
var ErrNotFound = errors.New("not found")
