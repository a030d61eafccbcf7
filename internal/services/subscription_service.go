package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"taskly/internal/billing"
	"taskly/internal/models/request_models"
	"taskly/internal/models/response_models"
	"taskly/internal/repositories"
	"taskly/pkg/utils"
)

type SubscriptionServiceInterface interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, request request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, request request_models.CancelSubscriptionRequest) error
	EnsureUserFields(ctx context.Context, userID uuid.UUID) error
	ListPlans() []response_models.PlanInfo
}

type SubscriptionService struct {
	providers map[billing.ProviderName]billing.Provider
	plans     *billing.PlanRegistry
	userRepo  repositories.UserRepository
}

func NewSubscriptionService(
	providers map[billing.ProviderName]billing.Provider,
	plans *billing.PlanRegistry,
	userRepo repositories.UserRepository,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		providers: providers,
		plans:     plans,
		userRepo:  userRepo,
	}
}

func (s *SubscriptionService) provider(name string) (billing.Provider, error) {
	parsed := billing.ProviderStripe
	if name != "" {
		var err error
		parsed, err = billing.ParseProviderName(name)
		if err != nil {
			return nil, err
		}
	}

	provider, ok := s.providers[parsed]
	if !ok {
		return nil, utils.ErrUnknownProvider
	}
	return provider, nil
}

// CreateCheckout asks the billing provider for an approval-redirect URL. A
// free/mock plan skips the redirect and reports immediate success. A provider
// response carrying neither an approval URL nor a message is a failure,
// regardless of any provider-specific error detail.
func (s *SubscriptionService) CreateCheckout(ctx context.Context, userID uuid.UUID, request request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error) {
	plan, err := billing.ParsePlanType(request.Plan)
	if err != nil {
		return nil, err
	}
	interval, err := billing.ParseInterval(request.Interval)
	if err != nil {
		return nil, err
	}

	provider, err := s.provider(request.Provider)
	if err != nil {
		return nil, err
	}

	result, err := provider.CreateCheckout(ctx, userID.String(), plan, interval)
	if err != nil {
		log.Printf("checkout initiation failed (provider=%s): %v", provider.Name(), err)
		return nil, utils.ErrCheckoutFailed
	}

	if result.ApprovalURL == "" && result.Message == "" {
		return nil, utils.ErrCheckoutFailed
	}

	return &response_models.CheckoutResponse{
		ApprovalURL: result.ApprovalURL,
		Message:     result.Message,
		Provider:    string(provider.Name()),
	}, nil
}

// Cancel runs the two-step cancellation: (a) provider cancel-at-period-end,
// (b) local record update. The steps are not transactional; a failure after
// (a) leaves the provider ahead of the local record. Duplicate requests
// re-issue both steps: the provider treats the cancel as a no-op and the
// record update re-applies the same values.
func (s *SubscriptionService) Cancel(ctx context.Context, userID uuid.UUID, request request_models.CancelSubscriptionRequest) error {
	provider, err := s.provider(request.Provider)
	if err != nil {
		return err
	}

	if err := provider.CancelAtPeriodEnd(ctx, request.SubscriptionID); err != nil {
		log.Printf("provider cancel failed (provider=%s, sub=%s): %v", provider.Name(), request.SubscriptionID, err)
		return utils.ErrCancelFailed
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	fields, err := s.userRepo.SubscriptionFields(user)
	if err != nil {
		return utils.ErrDatabaseError
	}

	now := time.Now().Unix()
	fields.CancelAtPeriodEnd = true
	fields.CanceledAt = &now
	fields.SubscriptionID = request.SubscriptionID

	if err := s.userRepo.UpdateSubscriptionFields(ctx, userID, fields); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *SubscriptionService) EnsureUserFields(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.EnsureSubscriptionDefaults(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SubscriptionService) ListPlans() []response_models.PlanInfo {
	var out []response_models.PlanInfo
	for _, plan := range billing.PlanTypes() {
		for _, interval := range billing.Intervals() {
			price, err := s.plans.ResolveDisplayPrice(plan, interval)
			if err != nil {
				// Unreachable with enumerated inputs.
				continue
			}
			out = append(out, response_models.PlanInfo{
				Plan:         string(plan),
				Interval:     string(interval),
				DisplayPrice: price,
				Currency:     "USD",
			})
		}
	}
	return out
}
