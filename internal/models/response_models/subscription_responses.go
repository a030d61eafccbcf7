package response_models

type CheckoutResponse struct {
	ApprovalURL string `json:"approval_url,omitempty"`
	Message     string `json:"message,omitempty"`
	Provider    string `json:"provider"`
}

type PlanInfo struct {
	Plan         string  `json:"plan"`
	Interval     string  `json:"interval"`
	DisplayPrice float64 `json:"display_price"`
	Currency     string  `json:"currency"`
}
