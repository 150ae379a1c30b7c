package wire

import (
	"agro-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckout(r chi.Router, checkoutHandler *adaptor.CheckoutHandler) {
	r.Post("/api/checkout", checkoutHandler.Checkout)
}
