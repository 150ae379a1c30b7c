package wire

import (
	"agro-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog mounts the public read-only endpoints
func wireCatalog(
	r chi.Router,
	bannerHandler *adaptor.BannerHandler,
	productHandler *adaptor.ProductHandler,
	imageHandler *adaptor.ImageHandler,
) {
	r.Get("/api/banners", bannerHandler.List)
	r.Get("/api/products", productHandler.List)
	r.Get("/api/images/{id}", imageHandler.Get)
}
