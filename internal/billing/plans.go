package billing

import (
	"fmt"
	"os"
	"strings"

	"taskly/pkg/utils"
)

type PlanType string

const (
	PlanPro        PlanType = "pro"
	PlanBusiness   PlanType = "business"
	PlanEnterprise PlanType = "enterprise"
)

type Interval string

const (
	IntervalMonthly Interval = "monthly"
	IntervalAnnual  Interval = "annual"
)

type ProviderName string

const (
	ProviderStripe ProviderName = "stripe"
	ProviderPayPal ProviderName = "paypal"
)

var planTypes = []PlanType{PlanPro, PlanBusiness, PlanEnterprise}
var intervals = []Interval{IntervalMonthly, IntervalAnnual}

func PlanTypes() []PlanType {
	out := make([]PlanType, len(planTypes))
	copy(out, planTypes)
	return out
}

func Intervals() []Interval {
	out := make([]Interval, len(intervals))
	copy(out, intervals)
	return out
}

func ParsePlanType(s string) (PlanType, error) {
	for _, p := range planTypes {
		if string(p) == s {
			return p, nil
		}
	}
	return "", utils.ErrUnknownPlan
}

func ParseInterval(s string) (Interval, error) {
	for _, i := range intervals {
		if string(i) == s {
			return i, nil
		}
	}
	return "", utils.ErrUnknownPlan
}

func ParseProviderName(s string) (ProviderName, error) {
	switch ProviderName(s) {
	case ProviderStripe:
		return ProviderStripe, nil
	case ProviderPayPal:
		return ProviderPayPal, nil
	}
	return "", utils.ErrUnknownProvider
}

type planKey struct {
	Plan     PlanType
	Interval Interval
}

// PlanPriceEntry holds the USD display price and the provider-specific
// identifiers for one plan/interval pair.
type PlanPriceEntry struct {
	DisplayPrice float64
	StripeID     string
	PayPalID     string
}

// displayPrices is the fixed USD price table.
var displayPrices = map[planKey]float64{
	{PlanPro, IntervalMonthly}:        9.99,
	{PlanPro, IntervalAnnual}:         99.99,
	{PlanBusiness, IntervalMonthly}:   24.99,
	{PlanBusiness, IntervalAnnual}:    249.99,
	{PlanEnterprise, IntervalMonthly}: 59.99,
	{PlanEnterprise, IntervalAnnual}:  599.99,
}

// PlanRegistry resolves plan identifiers and display prices. Identifiers come
// from environment configuration; when absent the registry falls back to
// deterministic mock placeholders (development mode).
type PlanRegistry struct {
	entries map[planKey]PlanPriceEntry
}

// NewPlanRegistryFromEnv reads STRIPE_PRICE_<PLAN>_<INTERVAL> and
// PAYPAL_PLAN_<PLAN>_<INTERVAL> for every plan/interval pair.
func NewPlanRegistryFromEnv() *PlanRegistry {
	entries := make(map[planKey]PlanPriceEntry, len(displayPrices))

	for _, plan := range planTypes {
		for _, interval := range intervals {
			key := planKey{plan, interval}
			suffix := strings.ToUpper(fmt.Sprintf("%s_%s", plan, interval))
			entries[key] = PlanPriceEntry{
				DisplayPrice: displayPrices[key],
				StripeID:     envOrMock("STRIPE_PRICE_"+suffix, ProviderStripe, plan, interval),
				PayPalID:     envOrMock("PAYPAL_PLAN_"+suffix, ProviderPayPal, plan, interval),
			}
		}
	}

	return &PlanRegistry{entries: entries}
}

func envOrMock(envKey string, provider ProviderName, plan PlanType, interval Interval) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return MockIdentifier(provider, plan, interval)
}

func MockIdentifier(provider ProviderName, plan PlanType, interval Interval) string {
	return fmt.Sprintf("mock_%s_%s_%s", provider, plan, interval)
}

// IsMockIdentifier reports whether id is a development-mode placeholder
// rather than a real provider identifier.
func IsMockIdentifier(id string) bool {
	return strings.HasPrefix(id, "mock_")
}

// ResolvePlanIdentifier is a pure lookup. It fails only for values outside
// the enumerated sets, which typed call sites prevent; this is an
// unreachable-error guard, not a validation path.
func (r *PlanRegistry) ResolvePlanIdentifier(provider ProviderName, plan PlanType, interval Interval) (string, error) {
	entry, ok := r.entries[planKey{plan, interval}]
	if !ok {
		return "", utils.ErrUnknownPlan
	}
	switch provider {
	case ProviderStripe:
		return entry.StripeID, nil
	case ProviderPayPal:
		return entry.PayPalID, nil
	}
	return "", utils.ErrUnknownProvider
}

// ResolveDisplayPrice is a pure USD price lookup with the same guard.
func (r *PlanRegistry) ResolveDisplayPrice(plan PlanType, interval Interval) (float64, error) {
	entry, ok := r.entries[planKey{plan, interval}]
	if !ok {
		return 0, utils.ErrUnknownPlan
	}
	return entry.DisplayPrice, nil
}
