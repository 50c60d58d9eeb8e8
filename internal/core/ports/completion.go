package ports

import "context"

// CompletionClient is the contract this system requires from the external
// language model: one prompt in, one free-text reply out. Implementations
// must honour ctx cancellation and deadlines.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
