package scholar

import "fmt"

// InputValidationError means no usable content source was supplied. It is
// raised before any network call.
type InputValidationError struct {
	Reason string
}

func (e *InputValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// EncodingError means a source file could not be read or encoded.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s: %v", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// GenerationError means the backend returned an empty, unparsable, or
// schema-violating response for a primary deliverable.
type GenerationError struct {
	Task Task
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Task, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ExportError means an export adapter failed. Exports are read-only
// projections, so in-memory results are never affected.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export failed: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
