package adaptor

import (
	"net/http"

	"agro-marketplace/internal/usecase"
	"agro-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ImageHandler struct {
	service usecase.ImageService
	log     *zap.Logger
}

func NewImageHandler(service usecase.ImageService, log *zap.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/images/{id}
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	img, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "get image")
		return
	}

	utils.ResponseBinary(w, img.ContentType, img.Data)
}
