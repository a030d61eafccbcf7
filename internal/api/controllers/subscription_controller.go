package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskly/internal/models/request_models"
	"taskly/internal/services"
	"taskly/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (ctl *SubscriptionController) ListPlansHandler(c *gin.Context) {
	utils.RespondSuccess(c, ctl.subscriptionService.ListPlans(), "")
}

// CreateCheckoutHandler starts a checkout with the billing provider and
// returns either an approval URL to redirect to or a message for plans that
// complete without one.
func (ctl *SubscriptionController) CreateCheckoutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Plan and interval are required")
		return
	}

	checkout, err := ctl.subscriptionService.CreateCheckout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, localize(c, "CheckoutCreated", "Checkout created"))
}

// CancelSubscriptionHandler cancels the caller's subscription at period end.
// Authentication is checked by the route middleware before any side effect;
// a missing subscription id is rejected here without touching the provider.
func (ctl *SubscriptionController) CancelSubscriptionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SubscriptionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "subscriptionId is required")
		return
	}

	if err := ctl.subscriptionService.Cancel(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, localize(c, "SubscriptionCanceled", "Subscription canceled"))
}

// EnsureUserFieldsHandler backfills the caller's subscription fields with the
// free-plan defaults when they are absent. Idempotent.
func (ctl *SubscriptionController) EnsureUserFieldsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctl.subscriptionService.EnsureUserFields(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, localize(c, "FieldsEnsured", "User fields ensured"))
}
