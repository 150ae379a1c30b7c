package adaptor

import (
	"net/http"

	"agro-marketplace/internal/dto/request"
	"agro-marketplace/internal/usecase"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log,
	}
}

// Checkout handles POST /api/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseSuccess(w, resp)
}
