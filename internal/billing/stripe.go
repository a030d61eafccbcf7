package billing

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/subscription"
)

type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

// StripeProvider bills through Stripe Checkout subscriptions.
type StripeProvider struct {
	cfg   StripeConfig
	plans *PlanRegistry
}

func NewStripeProvider(cfg StripeConfig, plans *PlanRegistry) *StripeProvider {
	stripe.Key = cfg.SecretKey
	return &StripeProvider{cfg: cfg, plans: plans}
}

func (s *StripeProvider) Name() ProviderName {
	return ProviderStripe
}

func (s *StripeProvider) CreateCheckout(ctx context.Context, userID string, plan PlanType, interval Interval) (*CheckoutResult, error) {
	priceID, err := s.plans.ResolvePlanIdentifier(ProviderStripe, plan, interval)
	if err != nil {
		return nil, err
	}

	// Development mode: no Stripe price configured, activate without redirect.
	if IsMockIdentifier(priceID) {
		return &CheckoutResult{Message: fmt.Sprintf("Subscription to %s (%s) activated", plan, interval)}, nil
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.cfg.SuccessURL),
		CancelURL:         stripe.String(s.cfg.CancelURL),
		ClientReferenceID: stripe.String(userID),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return &CheckoutResult{ApprovalURL: sess.URL}, nil
}

func (s *StripeProvider) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	if _, err := subscription.Update(subscriptionID, params); err != nil {
		return fmt.Errorf("stripe cancel at period end: %w", err)
	}
	return nil
}
