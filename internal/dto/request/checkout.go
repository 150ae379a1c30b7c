package request

type CheckoutItem struct {
	ImageID  string  `json:"image_id"`
	ToUserID string  `json:"toUserID"`
	Name     string  `json:"name" validate:"required,nomarkup"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type CheckoutRequest struct {
	Items   []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	BuyerID string         `json:"buyerId" validate:"required"`
}
