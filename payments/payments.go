// Package payments is the narrow boundary to the payment processor.
// The orchestrator only ever creates an intent and re-fetches it by id;
// it never trusts client-asserted payment state.
package payments

import "context"

const StatusSucceeded = "succeeded"

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Metadata     map[string]string
}

type Client interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
