package pipeline

// EmptyInputError indicates the input text contained no usable lines after
// normalization. No partial profile is produced in that case.
type EmptyInputError struct{}

// Error implements the error interface for EmptyInputError.
func (e *EmptyInputError) Error() string {
	return "empty input: no text lines remain after normalization"
}
