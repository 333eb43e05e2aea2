package ports

import "context"

// CaptureResult is the provider's answer to a capture call.
type CaptureResult struct {
	// ReferenceID is the order id the intent was originally tagged with.
	ReferenceID string
	Status      string
}

// PaymentProvider abstracts the external payment collaborator. Both calls
// block for the duration of the provider round trip; failures surface
// immediately as errors, nothing is retried here.
type PaymentProvider interface {
	// CreateIntent requests an authorized-but-not-captured payment tagged
	// with referenceID and returns the provider's intent id.
	CreateIntent(ctx context.Context, amount float64, currency, referenceID string) (string, error)
	// CaptureIntent completes the charge for a previously created intent.
	CaptureIntent(ctx context.Context, intentID string) (*CaptureResult, error)
}
