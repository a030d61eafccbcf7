package billing_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"taskly/internal/api/controllers"
	"taskly/internal/billing"
	"taskly/internal/repositories"
	"taskly/internal/services"
)

var Module = fx.Provide(
	providePlanRegistry, provideProviders, provideSubscriptionService, provideSubscriptionController)

func providePlanRegistry() *billing.PlanRegistry {
	return billing.NewPlanRegistryFromEnv()
}

func provideProviders(plans *billing.PlanRegistry) map[billing.ProviderName]billing.Provider {
	providers := map[billing.ProviderName]billing.Provider{
		billing.ProviderStripe: billing.NewStripeProvider(billing.StripeConfig{
			SecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
			SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
			CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
		}, plans),
	}

	paypalProvider, err := billing.NewPayPalProvider(billing.PayPalConfig{
		ClientID:  os.Getenv("PAYPAL_CLIENT_ID"),
		Secret:    os.Getenv("PAYPAL_SECRET"),
		APIBase:   os.Getenv("PAYPAL_API_BASE"),
		ReturnURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		CancelURL: os.Getenv("CHECKOUT_CANCEL_URL"),
	}, plans)
	if err != nil {
		log.Printf("PayPal provider unavailable: %v", err)
	} else {
		providers[billing.ProviderPayPal] = paypalProvider
	}

	return providers
}

func provideSubscriptionService(
	providers map[billing.ProviderName]billing.Provider,
	plans *billing.PlanRegistry,
	userRepo repositories.UserRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(providers, plans, userRepo)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
