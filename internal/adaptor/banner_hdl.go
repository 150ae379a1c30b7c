package adaptor

import (
	"net/http"

	"agro-marketplace/internal/usecase"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type BannerHandler struct {
	service usecase.BannerService
	log     *zap.Logger
}

func NewBannerHandler(service usecase.BannerService, log *zap.Logger) *BannerHandler {
	return &BannerHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/banners
func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListActive(r.Context())
	if err != nil {
		writeError(w, h.log, err, "list banners")
		return
	}

	utils.ResponseSuccess(w, banners)
}
