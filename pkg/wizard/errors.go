package wizard

import "errors"

// ErrAborted signals the user aborted the session (e.g., Ctrl+C).
var ErrAborted = errors.New("wizard: aborted")
