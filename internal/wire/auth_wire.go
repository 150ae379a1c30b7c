package wire

import (
	"agro-marketplace/internal/adaptor"
	"agro-marketplace/pkg/middleware"
	"agro-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// ==================== PROTECTED ROUTES ====================
		r.With(middleware.AuthJWT([]byte(config.JWT.Secret), log)).Get("/me", authHandler.Me)
	})
}
