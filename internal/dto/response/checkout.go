package response

type CheckoutResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	NotificationIDs []string `json:"notificationIds"`
}
