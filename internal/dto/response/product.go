package response

import (
	"time"

	"agro-marketplace/internal/data/entity"
)

type ProductResponse struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Quantity  float64    `json:"quantity"`
	ImageID   string     `json:"image_id"`
	UserID    string     `json:"user_id"`
	CreatedAt *time.Time `json:"created_at"`
}

type ProductListResponse struct {
	Success bool              `json:"success"`
	Data    []ProductResponse `json:"data"`
	Message string            `json:"message"`
}

func CropToResponse(c *entity.Crop) ProductResponse {
	return ProductResponse{
		ID:        c.ID,
		Name:      c.Name,
		Price:     c.Price,
		Quantity:  c.Quantity,
		ImageID:   c.ImageID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
	}
}
