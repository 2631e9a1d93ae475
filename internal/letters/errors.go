package letters

import "errors"

// ErrValidation marks a request rejected before the pipeline runs.
var ErrValidation = errors.New("validation failed")

const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeMalformedDocument = "malformed_document"
	ErrorCodeCompletionFailed  = "completion_failed"
	ErrorCodeExportFailed      = "export_failed"
	ErrorCodeInternal          = "internal_error"
)
