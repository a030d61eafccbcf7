package billing

import (
	"context"
	"errors"
	"fmt"

	paypal "github.com/plutov/paypal/v4"
)

type PayPalConfig struct {
	ClientID  string
	Secret    string
	APIBase   string
	ReturnURL string
	CancelURL string
}

// PayPalProvider bills through PayPal subscriptions. Without credentials the
// provider still serves mock plans; real identifiers then fail fast.
type PayPalProvider struct {
	cfg    PayPalConfig
	client *paypal.Client
	plans  *PlanRegistry
}

func NewPayPalProvider(cfg PayPalConfig, plans *PlanRegistry) (*PayPalProvider, error) {
	p := &PayPalProvider{cfg: cfg, plans: plans}

	if cfg.ClientID == "" || cfg.Secret == "" {
		return p, nil
	}

	base := cfg.APIBase
	if base == "" {
		base = paypal.APIBaseSandBox
	}

	client, err := paypal.NewClient(cfg.ClientID, cfg.Secret, base)
	if err != nil {
		return nil, fmt.Errorf("paypal client init: %w", err)
	}
	p.client = client
	return p, nil
}

func (p *PayPalProvider) Name() ProviderName {
	return ProviderPayPal
}

func (p *PayPalProvider) CreateCheckout(ctx context.Context, userID string, plan PlanType, interval Interval) (*CheckoutResult, error) {
	planID, err := p.plans.ResolvePlanIdentifier(ProviderPayPal, plan, interval)
	if err != nil {
		return nil, err
	}

	if IsMockIdentifier(planID) {
		return &CheckoutResult{Message: fmt.Sprintf("Subscription to %s (%s) activated", plan, interval)}, nil
	}

	if p.client == nil {
		return nil, errors.New("paypal credentials not configured")
	}

	if _, err := p.client.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal access token: %w", err)
	}

	sub, err := p.client.CreateSubscription(ctx, paypal.SubscriptionBase{
		PlanID:   planID,
		CustomID: userID,
		ApplicationContext: &paypal.ApplicationContext{
			ReturnURL: p.cfg.ReturnURL,
			CancelURL: p.cfg.CancelURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("paypal create subscription: %w", err)
	}

	result := &CheckoutResult{}
	for _, link := range sub.Links {
		if link.Rel == "approve" {
			result.ApprovalURL = link.Href
			break
		}
	}
	// No approve link and no message: the caller treats this as failure.
	return result, nil
}

func (p *PayPalProvider) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error {
	if p.client == nil {
		return errors.New("paypal credentials not configured")
	}

	if _, err := p.client.GetAccessToken(ctx); err != nil {
		return fmt.Errorf("paypal access token: %w", err)
	}

	if err := p.client.CancelSubscription(ctx, subscriptionID, "user requested cancellation"); err != nil {
		return fmt.Errorf("paypal cancel subscription: %w", err)
	}
	return nil
}
