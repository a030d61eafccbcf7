package billing

import "context"

// CheckoutResult is the unified outcome of a checkout initiation. Exactly one
// of the fields is set on success: ApprovalURL when the browser must be
// redirected to the provider, Message when a free/mock plan was activated
// without a redirect. A result with neither field is a failure.
type CheckoutResult struct {
	ApprovalURL string
	Message     string
}

// Provider is the single abstraction over the competing billing processors.
type Provider interface {
	Name() ProviderName

	// CreateCheckout requests an approval-redirect URL for the given plan.
	CreateCheckout(ctx context.Context, userID string, plan PlanType, interval Interval) (*CheckoutResult, error)

	// CancelAtPeriodEnd asks the provider to stop renewing the subscription.
	// Providers treat a repeated cancel for the same id as a no-op.
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error
}
