package repository

import (
	"agro-marketplace/pkg/database"

	"go.uber.org/zap"
)

// Collection names
const (
	usersCollection         = "users"
	bannersCollection       = "banners"
	cropsCollection         = "crops"
	imagesCollection        = "images"
	notificationsCollection = "notifications"
)

type Repository struct {
	User         UserRepository
	Banner       BannerRepository
	Crop         CropRepository
	Image        ImageRepository
	Notification NotificationRepository
}

func NewRepository(store *database.Store, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(store.Commerce, log),
		Banner:       NewBannerRepository(store.Commerce, log),
		Crop:         NewCropRepository(store.AI, log),
		Image:        NewImageRepository(store.AI, log),
		Notification: NewNotificationRepository(store.AI, log),
	}
}
