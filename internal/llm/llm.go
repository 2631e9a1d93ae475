package llm

import (
	"context"
	"fmt"
)

// Client abstracts completion providers for cover letter generation.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrorKind classifies completion failures.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindAuth      ErrorKind = "auth"
	KindService   ErrorKind = "service"
)

// CompletionError reports a failed completion call with its underlying
// cause. No kind is retried locally; all propagate to the caller.
type CompletionError struct {
	Kind ErrorKind
	Err  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed (%s): %v", e.Kind, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// NewCompletionError wraps err with the given kind.
func NewCompletionError(kind ErrorKind, err error) *CompletionError {
	return &CompletionError{Kind: kind, Err: err}
}
