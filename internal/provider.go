package internal

import "context"

// Provider is the transport capability: one synchronous round trip to the
// text-generation service. No retry or backoff is implied; failures surface
// to the caller.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
