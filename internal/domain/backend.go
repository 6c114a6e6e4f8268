package domain

import "context"

// Prompt is the fully assembled input of one backend call.
type Prompt struct {
	System string
	User   string
}

// ModelBackend is the text-completion capability the pipeline runs against.
// Implementations are stateless and safe for concurrent use; the caller bounds
// each call with a context deadline.
type ModelBackend interface {
	// Generate returns the model's raw text for the prompt or a *DomainError
	// with CodeBackendError.
	Generate(ctx context.Context, prompt Prompt) (string, error)

	// ModelID returns the model identifier the backend is configured to use.
	ModelID() string
}
