package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly/pkg/utils"
)

func TestRegistryResolvesEveryPair(t *testing.T) {
	registry := NewPlanRegistryFromEnv()

	for _, plan := range PlanTypes() {
		for _, interval := range Intervals() {
			for _, provider := range []ProviderName{ProviderStripe, ProviderPayPal} {
				id, err := registry.ResolvePlanIdentifier(provider, plan, interval)
				require.NoError(t, err, "%s/%s/%s", provider, plan, interval)
				assert.NotEmpty(t, id)

				// Same inputs, same identifier.
				again, err := registry.ResolvePlanIdentifier(provider, plan, interval)
				require.NoError(t, err)
				assert.Equal(t, id, again)
			}
		}
	}
}

func TestRegistryMockFallback(t *testing.T) {
	// No provider identifiers in the environment: every lookup returns the
	// development placeholder for its provider.
	registry := NewPlanRegistryFromEnv()

	id, err := registry.ResolvePlanIdentifier(ProviderStripe, PlanPro, IntervalMonthly)
	require.NoError(t, err)
	assert.Equal(t, "mock_stripe_pro_monthly", id)
	assert.True(t, IsMockIdentifier(id))

	id, err = registry.ResolvePlanIdentifier(ProviderPayPal, PlanEnterprise, IntervalAnnual)
	require.NoError(t, err)
	assert.Equal(t, "mock_paypal_enterprise_annual", id)
}

func TestRegistryEnvOverride(t *testing.T) {
	t.Setenv("STRIPE_PRICE_BUSINESS_ANNUAL", "price_live_123")

	registry := NewPlanRegistryFromEnv()

	id, err := registry.ResolvePlanIdentifier(ProviderStripe, PlanBusiness, IntervalAnnual)
	require.NoError(t, err)
	assert.Equal(t, "price_live_123", id)
	assert.False(t, IsMockIdentifier(id))

	// The paired PayPal identifier is unaffected.
	id, err = registry.ResolvePlanIdentifier(ProviderPayPal, PlanBusiness, IntervalAnnual)
	require.NoError(t, err)
	assert.True(t, IsMockIdentifier(id))
}

func TestResolveDisplayPrice(t *testing.T) {
	registry := NewPlanRegistryFromEnv()

	tests := []struct {
		plan     PlanType
		interval Interval
		want     float64
	}{
		{PlanPro, IntervalMonthly, 9.99},
		{PlanPro, IntervalAnnual, 99.99},
		{PlanBusiness, IntervalMonthly, 24.99},
		{PlanBusiness, IntervalAnnual, 249.99},
		{PlanEnterprise, IntervalMonthly, 59.99},
		{PlanEnterprise, IntervalAnnual, 599.99},
	}

	for _, tt := range tests {
		price, err := registry.ResolveDisplayPrice(tt.plan, tt.interval)
		require.NoError(t, err)
		assert.Equal(t, tt.want, price)
	}
}

func TestParsers(t *testing.T) {
	_, err := ParsePlanType("premium")
	assert.ErrorIs(t, err, utils.ErrUnknownPlan)

	_, err = ParseInterval("weekly")
	assert.ErrorIs(t, err, utils.ErrUnknownPlan)

	_, err = ParseProviderName("square")
	assert.ErrorIs(t, err, utils.ErrUnknownProvider)

	plan, err := ParsePlanType("pro")
	require.NoError(t, err)
	assert.Equal(t, PlanPro, plan)

	provider, err := ParseProviderName("paypal")
	require.NoError(t, err)
	assert.Equal(t, ProviderPayPal, provider)
}
