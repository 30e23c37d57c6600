package correction

import "fmt"

// InvalidPathError indicates a correction path that does not resolve to an
// existing field or list slot. The applier never creates structure for a
// malformed path.
type InvalidPathError struct {
	Path    string
	Message string
}

// Error implements the error interface for InvalidPathError.
func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid correction path %q: %s", e.Path, e.Message)
}

func invalidPath(path, format string, args ...interface{}) error {
	return &InvalidPathError{Path: path, Message: fmt.Sprintf(format, args...)}
}
