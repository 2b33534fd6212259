package llm

import "context"

// Client completes a prompt. Implementations must be safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
