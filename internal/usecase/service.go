package usecase

import (
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Banner   BannerService
	Product  ProductService
	Image    ImageService
	Checkout CheckoutService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, config.JWT, log),
		Banner:   NewBannerService(repo.Banner, log),
		Product:  NewProductService(repo.Crop, log),
		Image:    NewImageService(repo.Image, log),
		Checkout: NewCheckoutService(repo.Notification, log),
	}
}
