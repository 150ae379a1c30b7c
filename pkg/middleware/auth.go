package middleware

import (
	"errors"
	"net/http"
	"strings"

	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer access token and puts the user on the context
func AuthJWT(secret []byte, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseAccessToken(strings.TrimSpace(token), secret)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpired) {
					logger.Debug("Expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token has expired")
					return
				}
				logger.Warn("Invalid token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID(), claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
