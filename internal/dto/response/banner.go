package response

import "agro-marketplace/internal/data/entity"

type BannerResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
}

func BannerToResponse(b *entity.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		TargetURL: b.TargetURL,
	}
}
