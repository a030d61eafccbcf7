package request_models

type CreateCheckoutRequest struct {
	Plan     string `json:"plan" binding:"required"`
	Interval string `json:"interval" binding:"required"`
	Provider string `json:"provider"`
}

type CancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId"`
	Provider       string `json:"provider"`
}
