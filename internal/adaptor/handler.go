package adaptor

import (
	"encoding/json"
	"net/http"

	"agro-marketplace/internal/usecase"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

type Handler struct {
	Auth     *AuthHandler
	Banner   *BannerHandler
	Product  *ProductHandler
	Image    *ImageHandler
	Checkout *CheckoutHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Banner:   NewBannerHandler(service.Banner, log),
		Product:  NewProductHandler(service.Product, log),
		Image:    NewImageHandler(service.Image, log),
		Checkout: NewCheckoutHandler(service.Checkout, log),
	}
}

// decodeJSON reads the request body into dst and answers 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// writeError is the single place where service errors become HTTP responses
func writeError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := utils.AsAppError(err)
	code := appErr.StatusCode()

	if code >= http.StatusInternalServerError {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		message := appErr.Message
		if appErr.Err != nil && appErr.Err.Error() != appErr.Message {
			message = appErr.Message + ": " + appErr.Err.Error()
		}
		utils.ResponseInternalError(w, message)
		return
	}

	log.Warn(operation+" failed",
		zap.String("kind", string(appErr.Kind)),
		zap.String("message", appErr.Message))

	var fields any
	if len(appErr.Fields) > 0 {
		fields = appErr.Fields
	}
	utils.ResponseError(w, code, appErr.Message, fields)
}
