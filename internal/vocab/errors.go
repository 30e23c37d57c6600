package vocab

import "fmt"

// LoadError represents an error reading or parsing a vocabulary file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SchemaError represents a vocabulary file that failed schema validation.
type SchemaError struct {
	Path   string
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("vocabulary %s failed schema validation: %d issue(s)", e.Path, len(e.Issues))
}
